package commands

import (
	"testing"

	"github.com/Hackerago/dotnetpath/internal/doctor"
	"github.com/Hackerago/dotnetpath/internal/errors"
)

func TestValidateDoctorFlags(t *testing.T) {
	origJSON, origQuiet, origVerbose := doctorJSON, doctorQuiet, doctorVerbose
	defer func() {
		doctorJSON, doctorQuiet, doctorVerbose = origJSON, origQuiet, origVerbose
	}()

	tests := []struct {
		name      string
		json      bool
		quiet     bool
		verbose   bool
		wantError bool
	}{
		{"none", false, false, false, false},
		{"json only", true, false, false, false},
		{"quiet only", false, true, false, false},
		{"verbose only", false, false, true, false},
		{"json and quiet", true, true, false, true},
		{"json and verbose", true, false, true, true},
		{"quiet and verbose", false, true, true, true},
		{"all three", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctorJSON, doctorQuiet, doctorVerbose = tt.json, tt.quiet, tt.verbose
			err := validateDoctorFlags(nil, nil)
			if tt.wantError && err == nil {
				t.Error("expected error for conflicting flags")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDoctorExitErrors(t *testing.T) {
	var exitErr *errors.ExitError

	if !errors.As(errDoctorWarnings, &exitErr) || exitErr.Code != errors.ExitUser {
		t.Errorf("errDoctorWarnings should carry exit code %d", errors.ExitUser)
	}
	if !errors.As(errDoctorErrors, &exitErr) || exitErr.Code != errors.ExitSystem {
		t.Errorf("errDoctorErrors should carry exit code %d", errors.ExitSystem)
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		severity doctor.Severity
		want     string
	}{
		{doctor.SeverityPass, "✓"},
		{doctor.SeverityInfo, "ℹ"},
		{doctor.SeverityWarning, "⚠"},
		{doctor.SeverityError, "✗"},
	}

	for _, tt := range tests {
		if got := statusIcon(tt.severity); got != tt.want {
			t.Errorf("statusIcon(%v) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
