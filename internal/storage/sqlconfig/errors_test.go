package sqlconfig

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pq.Error{Code: "23505", Constraint: "categories_user_id_name_kind_key"}, ErrUniqueViolation},
		{"foreign key", &pq.Error{Code: "23503", Constraint: "transactions_category_id_fkey"}, ErrForeignKeyViolation},
		{"string too long", &pq.Error{Code: "22001", Message: "value too long for type character varying(200)"}, ErrValueOutOfRange},
		{"numeric overflow", &pq.Error{Code: "22003", Message: "numeric field overflow"}, ErrValueOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}
}

func TestTranslateError_PassesOtherErrorsThrough(t *testing.T) {
	other := &pq.Error{Code: "08006"}
	assert.Same(t, other, translateError(other))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translateError(plain))
}
