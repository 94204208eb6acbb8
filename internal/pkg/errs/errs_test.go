//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"parking-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errCategory = errors.New("category")
	errOther    = errors.New("other")
)

func TestMark(t *testing.T) {
	cause := errs.New("lot is full")
	marked := errs.Mark(cause, errCategory)

	assert.True(t, errors.Is(marked, errCategory), "stdlib sees the mark")
	assert.True(t, errs.Is(marked, errCategory), "cockroach sees the mark")
	assert.True(t, errors.Is(marked, cause), "cause stays reachable")
	assert.False(t, errors.Is(marked, errOther))
	assert.Equal(t, "lot is full", marked.Error())

	wrapped := fmt.Errorf("booking: %w", marked)
	assert.True(t, errors.Is(wrapped, errCategory))
}

func TestMark_MultipleMarks(t *testing.T) {
	err := errs.Mark(errs.New("bad pincode"), errCategory, errOther)
	assert.True(t, errors.Is(err, errCategory))
	assert.True(t, errors.Is(err, errOther))
}

func TestMark_NilCause(t *testing.T) {
	assert.Same(t, errCategory, errs.Mark(nil, errCategory))

	err := errs.Mark(nil, errCategory, errOther)
	assert.True(t, errors.Is(err, errCategory))
	assert.True(t, errors.Is(err, errOther))

	assert.NoError(t, errs.Mark(nil))
}

func TestMark_SentinelIdentity(t *testing.T) {
	sentinel := errs.Mark(errs.New("lot not found"), errCategory)
	assert.True(t, errors.Is(sentinel, sentinel))
	assert.True(t, errors.Is(fmt.Errorf("lookup: %w", sentinel), errCategory))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errCategory, "context")
	assert.True(t, errors.Is(err, errCategory))
	assert.Contains(t, err.Error(), "context")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
	assert.LessOrEqual(t, len(errs.ExtractStackLines(errs.New("boom"), 3)), 3)
}
