package assistant

import (
	"testing"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			name: "bulk register by credit hours",
			text: "Register me for 12 credit hours",
			want: Intent{Kind: IntentBulkRegister, Credits: 12},
		},
		{
			name: "bulk register with hours only",
			text: "register 15 hours please",
			want: Intent{Kind: IntentBulkRegister, Credits: 15},
		},
		{
			name: "single section register",
			text: "Register me for SOEN2351-01",
			want: Intent{Kind: IntentRegisterSection, CourseCode: "SOEN2351", SectionID: "SOEN2351-01"},
		},
		{
			name: "lowercase section id is uppercased",
			text: "please register me for soen2351-l1",
			want: Intent{Kind: IntentRegisterSection, CourseCode: "SOEN2351", SectionID: "SOEN2351-L1"},
		},
		{
			name: "bulk wins over section when both could match",
			text: "Register me for 9 credit hours",
			want: Intent{Kind: IntentBulkRegister, Credits: 9},
		},
		{
			name: "show all courses",
			text: "Show me all courses",
			want: Intent{Kind: IntentListCourses},
		},
		{
			name: "show registered courses",
			text: "Show my registered courses",
			want: Intent{Kind: IntentShowRegistered},
		},
		{
			name: "sections for a course",
			text: "Show sections for SOEN2351",
			want: Intent{Kind: IntentShowSections, CourseCode: "SOEN2351"},
		},
		{
			name: "sections without a course code",
			text: "what sections are there?",
			want: Intent{Kind: IntentShowSections},
		},
		{
			name: "what am i registered in",
			text: "what am I registered in?",
			want: Intent{Kind: IntentShowRegistered},
		},
		{
			name: "plan my schedule",
			text: "Plan my schedule",
			want: Intent{Kind: IntentPlanAdvice},
		},
		{
			name: "conflict check",
			text: "do I have any time conflicts?",
			want: Intent{Kind: IntentCheckConflicts},
		},
		{
			name: "greeting falls through to help",
			text: "hello there",
			want: Intent{Kind: IntentHelp},
		},
		{
			name: "empty input",
			text: "",
			want: Intent{Kind: IntentHelp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestParseExtractsFirstSectionID(t *testing.T) {
	intent := Parse("register me for COMP1201-01 and SOEN2351-01")
	assert.Equal(t, IntentRegisterSection, intent.Kind)
	assert.Equal(t, domain.SectionID("COMP1201-01"), intent.SectionID)
	assert.Equal(t, domain.CourseCode("COMP1201"), intent.CourseCode)
}
