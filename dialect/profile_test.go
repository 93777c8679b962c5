package dialect

import "testing"

func TestProfileAllows(t *testing.T) {
	tests := []struct {
		profile Profile
		feature Feature
		want    bool
	}{
		{Strict, AllowMissingSpaces, false},
		{Strict, AllowUnknownExtensionsAsComments, false},
		{Lenient, AllowMissingSpaces, true},
		{Lenient, AllowUnknownExtensionsAsComments, true},
	}

	for _, tt := range tests {
		if got := tt.profile.Allows(tt.feature); got != tt.want {
			t.Errorf("%v.Allows(%v) = %v, want %v", tt.profile, tt.feature, got, tt.want)
		}
	}
}

func TestDetectRequiredFeatures(t *testing.T) {
	got := DetectRequiredFeatures("Oct12:00-18:00")
	found := false
	for _, f := range got {
		if f == AllowMissingSpaces {
			found = true
		}
	}
	if !found {
		t.Errorf("expected AllowMissingSpaces to be detected in %q, got %v", "Oct12:00-18:00", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(Strict) || !IsValid(Lenient) {
		t.Error("Strict and Lenient should be valid profiles")
	}
	if IsValid(Profile(99)) {
		t.Error("Profile(99) should not be valid")
	}
}
