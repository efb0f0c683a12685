package converter

import (
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func MaintenanceToInfra(m *room.MaintenanceSchedule) pgq.CreateMaintenanceParams {
	return pgq.CreateMaintenanceParams{
		ID:        m.ID(),
		RoomID:    m.RoomID(),
		StartDate: DateToInfra(m.Period().Start),
		EndDate:   DateToInfra(m.Period().End),
		Reason:    m.Reason(),
		Active:    m.IsActive(),
		CreatedBy: m.CreatedBy(),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MaintenanceFromInfra(row pgq.MaintenanceSchedule) *room.MaintenanceSchedule {
	return room.ReconstructMaintenanceSchedule(
		row.ID,
		row.RoomID,
		rangeFromInfra(row.StartDate, row.EndDate),
		row.Reason,
		row.Active,
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func MaintenanceListFromInfra(rows []pgq.MaintenanceSchedule) []*room.MaintenanceSchedule {
	out := make([]*room.MaintenanceSchedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, MaintenanceFromInfra(row))
	}
	return out
}

func DateToInfra(d calendar.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromInfra(d pgtype.Date) calendar.Date {
	return calendar.FromTime(pgconv.DateFromPgtype(d))
}

// rangeFromInfra trusts the table's CHECK (end > start) and skips re-validation.
func rangeFromInfra(start, end pgtype.Date) calendar.DateRange {
	return calendar.DateRange{Start: DateFromInfra(start), End: DateFromInfra(end)}
}
