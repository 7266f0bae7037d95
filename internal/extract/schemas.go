package extract

// Tool schema versions. Bump the name suffix rather than editing a schema
// in place if the field set ever changes; the two stages never share a
// schema.
const (
	companyToolName   = "company_extraction"
	interviewToolName = "interview_experience_extraction"
)

func companyTool() Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        companyToolName,
			Description: "Extract the company name from the interview experience.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"is_interview_experience": map[string]interface{}{
						"type":        "boolean",
						"description": "True if this is an interview experience, False if general discussion.",
					},
					"company_name": map[string]interface{}{
						"type":        "string",
						"description": "Name of the company.",
					},
				},
				"required": []string{"is_interview_experience"},
			},
		},
	}
}

func interviewTool() Tool {
	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        interviewToolName,
			Description: "Interview Experience Extraction",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"location": map[string]interface{}{
						"type":        "string",
						"description": "For which location this interview is for",
					},
					"job_role_id": map[string]interface{}{
						"type":        "string",
						"description": "ID of the specific Internal Job Role this interview best matches.",
					},
					"number_of_rounds": map[string]interface{}{
						"type":        "integer",
						"description": "number of interview rounds",
					},
					"offer_status": map[string]interface{}{
						"type":        "string",
						"description": "Status of the offer",
						"enum":        []string{"Offer", "Pending", "Rejected", "Unknown"},
					},
					"preparation_source": map[string]interface{}{
						"type":        "string",
						"description": "Interview preparation source which can be helpful for others to prepare for dont summarize yourself, keep description from the interview intact. This can also be advice for others around how to prepare for interview. In case it is not present return empty. Dont return <UNKNOWN>",
					},
					"company_interview_process": map[string]interface{}{
						"type":        "string",
						"description": "Describe process of taking interview at the company, generally it evolves around how company starts approaching candidate till they share result. Please dont summarize this. Also dont write it as third person, instead it should be shown as candidate experience. In case it is not present return empty. Dont return <UNKNOWN>",
					},
					"interview_difficulty": map[string]interface{}{
						"type":        "string",
						"description": "Overall difficulty",
						"enum":        []string{"Easy", "Medium", "Hard"},
					},
					"overall_rating": map[string]interface{}{
						"type":        "number",
						"description": "Rating out of 5",
					},
					"confidence_score": map[string]interface{}{
						"type":        "integer",
						"description": "Confidence score 0-100 indicating the quality and completeness of this interview experience.",
					},
					"confidence_reasoning": map[string]interface{}{
						"type":        "string",
						"description": "Reasoning for the given confidence score.",
					},
					"is_anonymous": map[string]interface{}{
						"type":        "boolean",
						"description": "Is user anonymous",
					},
					"interview_rounds": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"sequence": map[string]interface{}{
									"type":        "integer",
									"description": "interview round sequence as per candidate experience, mostly starts with 1 and goes on",
								},
								"name": map[string]interface{}{
									"type":        "string",
									"description": "interview round title as per candidate experience",
								},
								"duration": map[string]interface{}{
									"type":        "string",
									"description": "Duration",
								},
								"experience": map[string]interface{}{
									"type":        "string",
									"description": "Interview round experience as per candidate, dont optimize this, keep as is what is present in Input. In case it is not present return empty. Dont return <UNKNOWN>",
								},
								"difficulty": map[string]interface{}{
									"type": "string",
									"enum": []string{"Easy", "Medium", "Hard"},
								},
								"key_takeaways": map[string]interface{}{
									"type":        "string",
									"description": "key takeaways from the interview round as per candidate experience",
								},
							},
							"required": []string{"sequence", "name", "experience", "difficulty"},
						},
					},
				},
				"required": []string{"job_role_id", "confidence_score"},
			},
		},
	}
}
