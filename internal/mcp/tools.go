package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "list_teams",
				"description": "List all registered teams with their configuration and declared baseline.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "create_team",
				"description": "Register a team for velocity tracking. The baseline is an optional expected output in points per full sprint, used to bootstrap recommendations until five sprints of real history exist.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name":        map[string]interface{}{"type": "string", "description": "Team display name; the team ID is derived from it"},
						"developers":  map[string]interface{}{"type": "integer", "description": "Capacity-contributing members, not total headcount"},
						"period_days": map[string]interface{}{"type": "integer", "description": "Sprint length in days"},
						"baseline":    map[string]interface{}{"type": "number", "description": "Optional expected points per full sprint"},
					},
					"required": []string{"name", "developers", "period_days"},
				},
			},
			map[string]interface{}{
				"name":        "update_team",
				"description": "Edit a team's configuration. Changes apply to future sprints only; logged sprints keep the configuration snapshot taken when they were recorded.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id":        map[string]interface{}{"type": "string"},
						"name":           map[string]interface{}{"type": "string"},
						"developers":     map[string]interface{}{"type": "integer"},
						"period_days":    map[string]interface{}{"type": "integer"},
						"baseline":       map[string]interface{}{"type": "number"},
						"clear_baseline": map[string]interface{}{"type": "boolean", "description": "Remove the declared baseline entirely"},
					},
					"required": []string{"team_id"},
				},
			},
			map[string]interface{}{
				"name":        "delete_team",
				"description": "Delete a team and, cascading, its entire sprint history.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"team_id"},
				},
			},
			map[string]interface{}{
				"name":        "log_sprint",
				"description": "Record a completed sprint: delivered points and total person-days of planned leave across the team (half days allowed). The team's current sprint length and developer count are snapshotted into the record.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id":      map[string]interface{}{"type": "string"},
						"label":        map[string]interface{}{"type": "string", "description": "Optional sprint name, e.g. 'Sprint 12'"},
						"completed":    map[string]interface{}{"type": "number", "description": "Delivered points; 0 is a valid outcome"},
						"leave_units":  map[string]interface{}{"type": "number", "description": "Person-days of leave summed across the team"},
						"completed_at": map[string]interface{}{"type": "string", "description": "Optional RFC3339 completion time; defaults to now"},
					},
					"required": []string{"team_id", "completed", "leave_units"},
				},
			},
			map[string]interface{}{
				"name":        "update_sprint",
				"description": "Correct a logged sprint's outcome (points, leave, label). The configuration snapshot cannot be edited.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id":     map[string]interface{}{"type": "string"},
						"sprint_id":   map[string]interface{}{"type": "integer"},
						"label":       map[string]interface{}{"type": "string"},
						"completed":   map[string]interface{}{"type": "number"},
						"leave_units": map[string]interface{}{"type": "number"},
					},
					"required": []string{"team_id", "sprint_id"},
				},
			},
			map[string]interface{}{
				"name":        "delete_sprint",
				"description": "Delete a single logged sprint.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id":   map[string]interface{}{"type": "string"},
						"sprint_id": map[string]interface{}{"type": "integer"},
					},
					"required": []string{"team_id", "sprint_id"},
				},
			},
			map[string]interface{}{
				"name":        "list_sprints",
				"description": "List a team's logged sprints, most recent first.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"team_id"},
				},
			},
			map[string]interface{}{
				"name":        "get_velocity",
				"description": "Compute the team's rolling average throughput in points per day from the five most recent usable sprints, blended with the declared baseline while history is sparse. hasData=false means there is nothing to average yet; ask the user to log sprints or declare a baseline instead of guessing.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id": map[string]interface{}{"type": "string"},
					},
					"required": []string{"team_id"},
				},
			},
			map[string]interface{}{
				"name":        "plan_sprint",
				"description": "Recommend a commitment for the next sprint given the expected person-days of leave. The recommendation is floored on purpose; never round it up when presenting it. hasData=false means either no throughput history or leave so large that under one team-day remains; do not invent a number in that case.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"team_id":        map[string]interface{}{"type": "string"},
						"expected_leave": map[string]interface{}{"type": "number", "description": "Person-days of planned leave for the upcoming sprint"},
					},
					"required": []string{"team_id", "expected_leave"},
				},
			},
		},
	}
}
