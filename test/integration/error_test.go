package integration

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/conreport/internal/config"
	"github.com/AndreyAkinshin/conreport/internal/coverage"
	"github.com/AndreyAkinshin/conreport/internal/errors"
	"github.com/AndreyAkinshin/conreport/internal/gotest"
	"github.com/AndreyAkinshin/conreport/internal/testing/mocks"
	"github.com/AndreyAkinshin/conreport/pkg/reporter"
)

func TestInvalidConfigFixture(t *testing.T) {
	t.Parallel()
	_, _, err := config.LoadAndValidate(filepath.Join(fixturesDir(), "configs", "invalid.yaml"))
	if err == nil {
		t.Fatal("LoadAndValidate() expected error")
	}
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("GetExitCode() = %d, want %d", got, errors.ExitConfigError)
	}
}

func TestMissingConfigFixture(t *testing.T) {
	t.Parallel()
	_, _, err := config.LoadAndValidate(filepath.Join(fixturesDir(), "configs", "missing.yaml"))
	if !errors.IsNotFound(err) {
		t.Errorf("LoadAndValidate() error = %v, want not found", err)
	}
}

func TestReporterWithoutEnvironment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		engine  reporter.Engine
		console bool
		want    error
	}{
		{"no engine", nil, true, reporter.ErrNoEngine},
		{"no console", gotest.New(), false, reporter.ErrNoConsole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.console {
				_, err = reporter.New(tt.engine, mocks.NewConsole())
			} else {
				_, err = reporter.New(tt.engine, nil)
			}
			if err != tt.want {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if got := errors.GetExitCode(err); got != errors.ExitEnvironmentError {
				t.Errorf("GetExitCode() = %d, want %d", got, errors.ExitEnvironmentError)
			}
		})
	}
}

func TestMalformedProfileCountsAsNothingCovered(t *testing.T) {
	t.Parallel()
	profile := coverage.NewProfile(filepath.Join(fixturesDir(), "streams", "passing.json"))
	got, _, rep := replay(t, "passing.json", reporter.WithCoverage(reporter.Coverage{Expected: 1, Covered: profile}))

	if !strings.Contains(got, "Expected 1 but saw 0") {
		t.Errorf("output =\n%s\nwant coverage mismatch", got)
	}
	if profile.Err() == nil {
		t.Error("Err() = nil, want parse error")
	}
	if rep.Status() != reporter.StatusFail {
		t.Errorf("Status() = %s, want fail", rep.Status())
	}
}
