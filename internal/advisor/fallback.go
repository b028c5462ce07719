package advisor

import "encoding/json"

// Static per-action fallbacks, served when the model path fails. They are
// generic but actionable, and always valid against toolResultSchema.

var fallbackResumeEnhance = json.RawMessage(`{
	"ats_improvements": [
		"Use standard section headings (Experience, Education, Skills)",
		"Include relevant keywords from job descriptions",
		"Use bullet points for achievements",
		"Quantify accomplishments with numbers"
	],
	"content_suggestions": [
		"Start bullet points with action verbs",
		"Focus on achievements, not responsibilities",
		"Tailor content to target role",
		"Keep descriptions concise and impactful"
	],
	"format_tips": [
		"Use consistent formatting throughout",
		"Choose a clean, professional layout",
		"Ensure good white space distribution",
		"Use 10-12pt font size"
	]
}`)

var fallbackSkillGap = json.RawMessage(`{
	"missing_skills": [
		"Cloud platforms (AWS, Azure, GCP)",
		"Advanced programming frameworks",
		"Data analysis tools",
		"Project management skills"
	],
	"development_roadmap": [
		"Complete online courses in missing skills",
		"Build projects showcasing new skills",
		"Obtain relevant certifications",
		"Join professional communities"
	]
}`)

var fallbackMockInterview = json.RawMessage(`{
	"technical_questions": [
		"Explain your most challenging project",
		"How do you stay updated with technology trends?",
		"Describe your problem-solving approach"
	],
	"behavioral_questions": [
		"Tell me about a time you worked in a team",
		"How do you handle tight deadlines?",
		"Describe a difficult situation you overcame"
	]
}`)

var fallbackCareerRoadmap = json.RawMessage(`{
	"short_term": [
		"Complete current degree with strong GPA",
		"Build 2-3 substantial projects",
		"Apply for internships",
		"Develop networking skills"
	],
	"medium_term": [
		"Secure entry-level position",
		"Gain 1-2 years professional experience",
		"Pursue relevant certifications",
		"Take on leadership responsibilities"
	],
	"long_term": [
		"Advance to senior technical role",
		"Consider specialization or management track",
		"Mentor junior developers",
		"Contribute to open source projects"
	]
}`)

var fallbackGeneral = json.RawMessage(`{
	"message": "AI service temporarily unavailable. Please try again later.",
	"suggestions": [
		"Check your profile completeness",
		"Update your skills and projects",
		"Review job requirements carefully"
	]
}`)

// toolFallback returns the static payload for an action.
func toolFallback(action ToolAction) json.RawMessage {
	switch action {
	case ActionResumeEnhance:
		return fallbackResumeEnhance
	case ActionSkillGapAnalysis:
		return fallbackSkillGap
	case ActionMockInterview:
		return fallbackMockInterview
	case ActionCareerRoadmap:
		return fallbackCareerRoadmap
	default:
		return fallbackGeneral
	}
}
