package microicon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	assert.Empty(t, Preview(nil, 10))
	assert.Empty(t, Preview(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 10))

	out := Preview(createTestImage(8, 8), 4)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "\x1b[", "halfblocks carry ANSI colors")
}
