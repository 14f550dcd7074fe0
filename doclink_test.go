package doclink_test

import (
	"fmt"
	"testing"

	"github.com/doclink/doclink"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := doclink.Errorf(doclink.ENOTFOUND, "bookmark %q not found", "test")

	assert.Equal(t, doclink.ENOTFOUND, doclink.ErrorCode(err))
	assert.Equal(t, "bookmark \"test\" not found", doclink.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doclink.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, doclink.EINTERNAL, doclink.ErrorCode(fmt.Errorf("disk on fire")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup failed: %w", doclink.Errorf(doclink.ENOTFOUND, "document not found"))

	assert.Equal(t, doclink.ENOTFOUND, doclink.ErrorCode(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doclink.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", doclink.ErrorMessage(fmt.Errorf("disk on fire")))
}
