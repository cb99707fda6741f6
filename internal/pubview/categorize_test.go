// Copyright Niklas Bubeck, 2026. All rights reserved.

package pubview

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		venue string
		want  Category
	}{
		{"Proceedings of the IEEE Conference on Computer Vision", CategoryConference},
		{"CVPR", CategoryConference},
		{"cvpr 2023", CategoryConference},
		{"NeurIPS Workshop on Robustness", CategoryConference},
		{"International Symposium on Biomedical Imaging", CategoryConference},
		{"ECCV", CategoryConference},
		{"arXiv.org", CategoryPreprint},
		{"bioRxiv", CategoryPreprint},
		{"medRxiv preprint server", CategoryPreprint},
		{"Nature Medicine", CategoryJournal},
		{"IEEE Transactions on Medical Imaging", CategoryJournal},
		{"Unknown Venue", CategoryJournal},
		{"", CategoryJournal},
	}
	for _, tt := range tests {
		t.Run(tt.venue, func(t *testing.T) {
			if got := Categorize(tt.venue); got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.venue, got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"conference", CategoryConference},
		{"journal", CategoryJournal},
		{"preprint", CategoryPreprint},
		{"all", CategoryAll},
		{"", CategoryAll},
		{"bogus", CategoryAll},
	}
	for _, tt := range tests {
		if got := ParseFilter(tt.in); got != tt.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
