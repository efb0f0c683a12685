package uow

var FinalError = finalError
