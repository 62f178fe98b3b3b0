package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/partviewer/rig"
	"github.com/seqsense/partviewer/scene"
)

func TestRun(t *testing.T) {
	testCases := map[string]struct {
		lines    []string
		expected string
		err      error
	}{
		"Empty": {
			lines: []string{""},
		},
		"Part": {
			lines:    []string{"part 2"},
			expected: "0.000 0.000 0.000\n0.000 0.000 0.000\n1.000 1.000 1.000\n0.000 0.000 0.000",
		},
		"SetPosition": {
			lines:    []string{"position 1 0.5 0 -1"},
			expected: "0.500 0.000 -1.000",
		},
		"GetRotation": {
			lines:    []string{"rotation 2 30 0 0", "rotation 2"},
			expected: "30.000 0.000 0.000",
		},
		"Pivot": {
			lines:    []string{"pivot 2 0.93 1.35 -0.25"},
			expected: "0.930 1.350 -0.250",
		},
		"Reset": {
			lines:    []string{"position 3 0 1 1", "reset", "position 3"},
			expected: "0.000 0.000 0.000",
		},
		"Camera": {
			lines:    []string{"camera"},
			expected: "0.000 0.000 5.000 -90.000 0.000",
		},
		"SetCamera": {
			lines:    []string{"camera 1 2 3 0 120"},
			expected: "1.000 2.000 3.000 0.000 89.000",
		},
		"InvalidCommand": {
			lines: []string{"jump"},
			err:   ErrInvalidCommand,
		},
		"ArgumentNumber": {
			lines: []string{"position 1 2"},
			err:   ErrArgumentNumber,
		},
		"PartOutOfRange": {
			lines: []string{"part 4"},
			err:   rig.ErrPartIndex,
		},
		"NegativePart": {
			lines: []string{"rotation -1"},
			err:   rig.ErrPartIndex,
		},
		"FractionalPart": {
			lines: []string{"part 1.5"},
			err:   errPartIndex,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := scene.New()
			var res string
			var err error
			for _, l := range tt.lines {
				res, err = Run(s, l)
			}
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestRun_BadNumber(t *testing.T) {
	_, err := Run(scene.New(), "position 1 x 0 0")
	assert.Error(t, err)
}

func TestRun_Mutates(t *testing.T) {
	s := scene.New()
	_, err := Run(s, "position 1 0.25 0 0")
	require.NoError(t, err)
	assert.Equal(t, mat.Translate(0.25, 0, 0), s.Parts.WorldMatrix(1))
}

func TestServe(t *testing.T) {
	s := scene.New()
	var out bytes.Buffer
	var queued []func(*scene.State)
	post := func(fn func(*scene.State)) {
		queued = append(queued, fn)
	}

	in := strings.NewReader("position 1 1 2 3\n\njump\n")
	require.NoError(t, Serve(in, &out, post))
	require.Zero(t, out.Len(), "commands must not run before being dispatched")
	for _, fn := range queued {
		fn(s)
	}
	assert.Equal(t, "1.000 2.000 3.000\nerror: invalid command\n", out.String())
}
