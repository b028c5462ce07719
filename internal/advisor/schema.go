package advisor

// JSON Schemas the model's payloads must satisfy before they reach clients.
// Tool output is intentionally loose (each tool names its own sections and
// models drift on exact keys); recommendations are strict because the job
// IDs feed straight into the browse pipeline.

const recommendationSchema = `{
	"type": "object",
	"required": ["recommended_job_ids", "reasoning"],
	"properties": {
		"recommended_job_ids": {
			"type": "array",
			"items": {"type": "string"}
		},
		"reasoning": {"type": "string"}
	}
}`

const toolResultSchema = `{
	"type": "object",
	"minProperties": 1
}`
