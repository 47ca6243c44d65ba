package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantFK     bool
	}{
		{name: "translated duplicate", err: gorm.ErrDuplicatedKey, wantUnique: true},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, wantFK: true},
		{name: "wrapped pgx unique", err: errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert"), wantUnique: true},
		{name: "pgx foreign key", err: &pgconn.PgError{Code: pgForeignKeyViolation}, wantFK: true},
		{name: "other pgx error", err: &pgconn.PgError{Code: "40P01"}},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUnique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.wantFK, isForeignKeyConstraintViolation(tt.err))
		})
	}
}
