package calls_test

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/calls/pkg/compiler/calls"
	"github.com/rhino1998/calls/pkg/fixture"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	t.Parallel()

	dir := os.DirFS("./testdata/")
	testFiles, err := fs.Glob(dir, "*.txt")
	if err != nil {
		t.Fatal(err)
	}

	for _, testFile := range testFiles {
		name := strings.Split(testFile, ".")[0]
		t.Run(name, func(t *testing.T) {
			r := require.New(t)
			logger := slogt.New(t)

			testData, err := fs.ReadFile(dir, testFile)
			r.NoError(err)

			parts := bytes.SplitN(testData, []byte("\n---\n"), 2)
			r.Len(parts, 2)
			source := bytes.TrimSpace(parts[0])
			expected := strings.TrimSpace(string(parts[1]))

			prog, err := fixture.Parse(logger, source, testFile)
			r.NoError(err)

			p, err := calls.New(logger, calls.DefaultConfig())
			r.NoError(err)

			var output strings.Builder
			for _, site := range prog.Sites {
				tasks, err := p.ComputeTasks(site.Call, site.Members)
				r.NoError(err)

				fmt.Fprintf(&output, "%s:\n%s", site.Name, calls.Format(tasks))
			}

			r.Equal(expected, strings.TrimSpace(output.String()))
		})
	}
}
