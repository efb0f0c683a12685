package commands

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/conflict"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Number    string
	Type      string
	Floor     string
	Capacity  int
	Tariff    int64
	Amenities []string
}

type ScheduleMaintenanceInput struct {
	Room      room.Ref
	StartDate calendar.Date
	EndDate   calendar.Date
	Reason    string
}

type RoomCommands interface {
	Create(ctx context.Context, a actor.Actor, in CreateRoomInput) (*queries.RoomView, error)
	// MarkReady is housekeeping's release of a cleaned or repaired room.
	MarkReady(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error)
	TakeOutOfService(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error)
	ReturnToService(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error)
	ScheduleMaintenance(ctx context.Context, a actor.Actor, in ScheduleMaintenanceInput) (*queries.MaintenanceView, error)
	ClearMaintenance(ctx context.Context, a actor.Actor, id uuid.UUID) (*queries.MaintenanceView, error)
}

type roomUseCaseImpl struct {
	uow    shared.UnitOfWork
	policy *shared.Policy
}

func NewRoomUseCase(uow shared.UnitOfWork, policy *shared.Policy) RoomCommands {
	return &roomUseCaseImpl{uow: uow, policy: policy}
}

func (uc *roomUseCaseImpl) Create(ctx context.Context, a actor.Actor, in CreateRoomInput) (*queries.RoomView, error) {
	r, err := room.NewRoom(room.Spec{
		PropertyID: a.PropertyID,
		Number:     in.Number,
		Type:       in.Type,
		Floor:      in.Floor,
		Capacity:   in.Capacity,
		Tariff:     in.Tariff,
		Amenities:  in.Amenities,
	}, uc.policy.Now())
	if err != nil {
		return nil, domainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Rooms().Create(ctx, tx.DB(), r)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return ErrDuplicateRoomNumber
		}
		return derr
	})
	if err != nil {
		return nil, err
	}
	slog.Info("room created", "room_id", r.ID(), "room_number", r.Number())
	return queries.RoomViewFrom(r), nil
}

func (uc *roomUseCaseImpl) MarkReady(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error) {
	return uc.transition(ctx, a, ref, (*room.Room).MarkReady)
}

func (uc *roomUseCaseImpl) TakeOutOfService(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error) {
	return uc.transition(ctx, a, ref, (*room.Room).TakeOutOfService)
}

func (uc *roomUseCaseImpl) ReturnToService(ctx context.Context, a actor.Actor, ref room.Ref) (*queries.RoomView, error) {
	return uc.transition(ctx, a, ref, (*room.Room).ReturnToService)
}

func (uc *roomUseCaseImpl) transition(
	ctx context.Context,
	a actor.Actor,
	ref room.Ref,
	apply func(*room.Room, time.Time) error,
) (*queries.RoomView, error) {
	target, err := resolveRoom(ctx, uc.uow, a, ref)
	if err != nil {
		return nil, err
	}

	var (
		view *queries.RoomView
		from room.Status
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Rooms().Lock(ctx, tx.DB(), target.ID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}
		from = r.Status()
		if derr = apply(r, uc.policy.Now()); derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Rooms().SaveStatus(ctx, tx.DB(), r); derr != nil {
			return derr
		}
		view = queries.RoomViewFrom(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("room status changed", "room_number", view.Number, "from", from.String(), "to", view.Status)
	return view, nil
}

func (uc *roomUseCaseImpl) ScheduleMaintenance(ctx context.Context, a actor.Actor, in ScheduleMaintenanceInput) (*queries.MaintenanceView, error) {
	period, err := uc.policy.Period(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	// a window that is already over cannot block anything
	if !period.End.After(uc.policy.Today()) {
		return nil, domainErr(calendar.ErrInvalidRange)
	}
	target, err := resolveRoom(ctx, uc.uow, a, in.Room)
	if err != nil {
		return nil, err
	}

	var view *queries.MaintenanceView
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Rooms().Lock(ctx, tx.DB(), target.ID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}

		inputs, derr := roomInputs(ctx, tx, r.ID(), period.Start)
		if derr != nil {
			return derr
		}
		// overlapping maintenance windows may stack; guests may not be displaced
		inputs.IgnoreMaintenance = true
		if conflicts := conflict.Detect(period, inputs); len(conflicts) > 0 {
			return newConflictError(conflicts)
		}

		now := uc.policy.Now()
		m, derr := room.NewMaintenanceSchedule(r.ID(), period, in.Reason, a.ID, now)
		if derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Maintenance().Create(ctx, tx.DB(), m); derr != nil {
			return derr
		}

		if period.Covers(uc.policy.Today()) && r.BeginMaintenance(now) == nil {
			if derr = tx.Rooms().SaveStatus(ctx, tx.DB(), r); derr != nil {
				return derr
			}
		}
		view = queries.MaintenanceViewFrom(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("maintenance scheduled", "maintenance_id", view.ID, "room_id", view.RoomID, "start", view.StartDate.String(), "end", view.EndDate.String())
	return view, nil
}

func (uc *roomUseCaseImpl) ClearMaintenance(ctx context.Context, a actor.Actor, id uuid.UUID) (*queries.MaintenanceView, error) {
	var view *queries.MaintenanceView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Maintenance().Get(ctx, tx.DB(), id)
		if derr != nil {
			return notFound(derr, ErrMaintenanceNotFound)
		}
		r, derr := tx.Rooms().Lock(ctx, tx.DB(), m.RoomID())
		if derr != nil {
			return notFound(derr, ErrRoomNotFound)
		}
		if r.PropertyID() != a.PropertyID {
			return ErrMaintenanceNotFound
		}

		if derr = m.Clear(); derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Maintenance().Deactivate(ctx, tx.DB(), m.ID()); derr != nil {
			return derr
		}

		if derr = uc.releaseMaintenance(ctx, tx, r, m.ID()); derr != nil {
			return derr
		}
		view = queries.MaintenanceViewFrom(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("maintenance cleared", "maintenance_id", id)
	return view, nil
}

// releaseMaintenance returns the room to service once no other active window covers today.
func (uc *roomUseCaseImpl) releaseMaintenance(ctx context.Context, tx shared.Tx, r *room.Room, cleared uuid.UUID) error {
	if r.Status() != room.StatusMaintenance {
		return nil
	}
	today := uc.policy.Today()
	windows, err := tx.Maintenance().ListActiveByRoom(ctx, tx.DB(), r.ID(), today)
	if err != nil {
		return err
	}
	for _, w := range windows {
		if w.ID() != cleared && w.IsActive() && w.Period().Covers(today) {
			return nil
		}
	}
	if err = r.MarkReady(uc.policy.Now()); err != nil {
		return domainErr(err)
	}
	return tx.Rooms().SaveStatus(ctx, tx.DB(), r)
}
