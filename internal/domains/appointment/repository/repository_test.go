package repository_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"estetica/internal/domains/appointment/model"
	"estetica/internal/domains/appointment/repository"
	gDto "estetica/shared/dto"
)

// evalConflict interprets the generated filter group against a stored
// appointment, applying each operator the way the SQL layer renders it.
func evalConflict(group gDto.FilterGroup, appt model.Appointment) bool {
	for _, raw := range group.Filters {
		filter, ok := raw.(gDto.Filter)
		if !ok {
			return false
		}

		if !holds(filter, appt) {
			return false
		}
	}

	return true
}

func holds(filter gDto.Filter, appt model.Appointment) bool {
	switch filter.Operator {
	case gDto.FilterOperatorEq:
		return fieldValue(filter.Field, appt) == filter.Value
	case gDto.FilterOperatorNotEq:
		return fieldValue(filter.Field, appt) != filter.Value
	case gDto.FilterOperatorLess:
		value, _ := fieldValue(filter.Field, appt).(time.Time)
		bound, _ := filter.Value.(time.Time)

		return value.Before(bound)
	case gDto.FilterOperatorGreater:
		value, _ := fieldValue(filter.Field, appt).(time.Time)
		bound, _ := filter.Value.(time.Time)

		return value.After(bound)
	default:
		return false
	}
}

func fieldValue(field string, appt model.Appointment) any {
	switch field {
	case model.FieldID:
		return appt.ID
	case model.FieldEsteticista:
		return appt.Esteticista
	case model.FieldStatus:
		return string(appt.Status)
	case model.FieldStartTime:
		return appt.StartTime
	case model.FieldEndTime:
		return appt.EndTime
	default:
		return nil
	}
}

func stored(esteticista string, status model.Status, start, end time.Time) model.Appointment {
	return model.Appointment{
		ID:          "appt-existing",
		Esteticista: esteticista,
		Status:      status,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestConflictFilter_WhereClause(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	group := repository.ConflictFilter("Ana", start, end, "appt-1")
	clause, args := group.GetWhereClause()

	// Both interval comparisons must be strict for back-to-back slots to fit.
	assert.Contains(t, clause, "appointments.start_time < :conflict_end")
	assert.Contains(t, clause, "appointments.end_time > :conflict_start")
	assert.Contains(t, clause, "appointments.status != :status")
	assert.Contains(t, clause, "appointments.id != :exclude_id")

	assert.Equal(t, end, args["conflict_end"])
	assert.Equal(t, start, args["conflict_start"])
	assert.Equal(t, string(model.StatusCancelled), args["status"])
	assert.Equal(t, "appt-1", args["exclude_id"])

	noExclude := repository.ConflictFilter("Ana", start, end, "")
	clause, _ = noExclude.GetWhereClause()
	assert.NotContains(t, clause, "exclude_id")
}

func TestConflictFilter_HalfOpenOverlap(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	existing := stored("Ana", model.StatusScheduled, at(10, 0), at(11, 0))

	tests := []struct {
		name       string
		appt       model.Appointment
		start, end time.Time
		excludeID  string
		want       bool
	}{
		{"same interval conflicts", existing, at(10, 0), at(11, 0), "", true},
		{"candidate ending when the existing starts fits", existing, at(9, 0), at(10, 0), "", false},
		{"candidate starting when the existing ends fits", existing, at(11, 0), at(12, 0), "", false},
		{"one minute of overlap at the tail conflicts", existing, at(10, 59), at(11, 59), "", true},
		{"candidate containing the existing conflicts", existing, at(9, 0), at(12, 0), "", true},
		{"candidate inside the existing conflicts", existing, at(10, 15), at(10, 45), "", true},
		{"cancelled appointment never blocks", stored("Ana", model.StatusCancelled, at(10, 0), at(11, 0)), at(10, 0), at(11, 0), "", false},
		{"another esteticista does not block", stored("Bia", model.StatusScheduled, at(10, 0), at(11, 0)), at(10, 0), at(11, 0), "", false},
		{"the appointment being moved is excluded", existing, at(10, 0), at(11, 0), "appt-existing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := repository.ConflictFilter("Ana", tt.start, tt.end, tt.excludeID)

			assert.Equal(t, tt.want, evalConflict(group, tt.appt))
		})
	}
}

// Random interval pairs over a working day: the filter must flag exactly the
// pairs that overlap under half-open semantics.
func TestConflictFilter_RandomIntervals(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	day := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	randomInterval := func() (time.Time, time.Time) {
		start := day.Add(time.Duration(rng.Intn(8*60)) * time.Minute)
		end := start.Add(time.Duration(15+rng.Intn(120)) * time.Minute)

		return start, end
	}

	for range 500 {
		existingStart, existingEnd := randomInterval()
		candidateStart, candidateEnd := randomInterval()

		existing := stored("Ana", model.StatusScheduled, existingStart, existingEnd)

		want := existingStart.Before(candidateEnd) && existingEnd.After(candidateStart)
		got := evalConflict(repository.ConflictFilter("Ana", candidateStart, candidateEnd, ""), existing)

		assert.Equal(t, want, got,
			"existing [%s, %s) vs candidate [%s, %s)",
			existingStart.Format(time.TimeOnly), existingEnd.Format(time.TimeOnly),
			candidateStart.Format(time.TimeOnly), candidateEnd.Format(time.TimeOnly))
	}
}
