package manifest

import "testing"

// TestValidateSample verifies a typical template manifest passes.
func TestValidateSample(t *testing.T) {
	res, err := Validate(mustParse(t, sampleJSON))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !res.Valid {
		t.Errorf("Valid = false, issues = %v", res.Issues)
	}
}

// TestValidateRejectsNonStringDependency verifies dependency values must be strings.
func TestValidateRejectsNonStringDependency(t *testing.T) {
	res, err := Validate(mustParse(t, `{"name":"x","dependencies":{"react":18}}`))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if res.Valid {
		t.Fatal("Valid = true for numeric dependency version")
	}
	if len(res.Issues) == 0 {
		t.Error("expected at least one issue")
	}
	for _, issue := range res.Issues {
		if issue.String() == "" {
			t.Error("issue renders empty")
		}
	}
}

// TestValidateRejectsNonObjectScripts verifies scripts must be an object.
func TestValidateRejectsNonObjectScripts(t *testing.T) {
	res, err := ValidateBytes([]byte(`{"scripts":["dev"]}`))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if res.Valid {
		t.Error("Valid = true for array scripts")
	}
}

// TestValidateBytesInvalidJSON verifies parse failures are errors, not issues.
func TestValidateBytesInvalidJSON(t *testing.T) {
	if _, err := ValidateBytes([]byte("{nope")); err == nil {
		t.Error("ValidateBytes(invalid JSON) error = nil")
	}
}

// TestValidationIssueString verifies path-prefixed rendering.
func TestValidationIssueString(t *testing.T) {
	if got := (ValidationIssue{Path: "/name", Message: "bad"}).String(); got != "/name: bad" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}
