package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/battery-supply-chain/internal/domain"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	err := classify(&pgconn.PgError{Code: "08006", Message: "connection failure"})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	err = classify(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	plain := errors.New("syntax error")
	assert.Equal(t, plain, classify(plain), "otros errores se devuelven sin envolver")

	uniq := &pgconn.PgError{Code: "23505"}
	assert.NotErrorIs(t, classify(uniq), domain.ErrStorageUnavailable)
}
