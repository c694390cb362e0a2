package hitl

import (
	"fmt"
	"strings"

	"github.com/buildloop/foundry/ent"
	"github.com/buildloop/foundry/ent/message"
	"github.com/buildloop/foundry/ent/session"
	"github.com/buildloop/foundry/pkg/llm"
)

// dialogueSystemPrompt steers the clarification dialogue. The model must
// answer with the JSON envelope the engine parses; malformed output falls
// back to raw text.
const dialogueSystemPrompt = `You are a requirements analyst helping a user turn a project idea into a buildable specification.

Ask one focused question per turn. Track what you have learned in these categories: project_type, tech_stack (frontend, backend, database), scale (expected_users, performance), features (core_features, user_roles), constraints (timeline, integrations).

Respond with a single JSON object:
{
  "message": "<your reply or next question>",
  "gathered": { "<category>": { "<field>": <value> } },
  "progress": <0-100>,
  "ready_for_spec": <true only when requirements are complete AND the user has explicitly confirmed they are done>,
  "next_category": "<category still missing fields, or empty>"
}`

// specSystemPrompt produces the spec card from the full dialogue.
const specSystemPrompt = `You are a software architect. From the requirements dialogue below, write a complete project specification in markdown: overview, functional requirements, technical architecture, data model, API surface, and acceptance criteria for the whole project. Output only the specification document.`

// Ticket generation prompts, one per project type. Each must yield the JSON
// batch the engine inserts atomically.
const ticketBatchFormat = `Respond with a single JSON object:
{
  "tickets": [
    {
      "title": "...",
      "description": "...",
      "acceptance_criteria": ["..."],
      "epic": "...",
      "scope": "small|medium|large",
      "file_hints": ["..."],
      "priority": "high|medium|low",
      "depends_on": [<zero-based indexes of tickets in this list that must finish first>]
    }
  ]
}
The depends_on edges must form a DAG. Order tickets so foundations come first.`

const ticketSystemPromptGeneric = `You are a technical lead decomposing an approved specification into implementation tickets for autonomous coding agents. Each ticket must be independently implementable once its dependencies are done, sized for a single focused change, and carry concrete acceptance criteria.

` + ticketBatchFormat

const ticketSystemPromptBuildFeature = `You are a technical lead decomposing an approved feature specification into implementation tickets against an existing codebase. Respect the repository's established structure and patterns; prefer modifying existing files over creating parallel ones. Each ticket must name the files it touches in file_hints.

` + ticketBatchFormat

const ticketSystemPromptMCPServer = `You are a technical lead decomposing an approved MCP server specification into implementation tickets. Structure the work as: server scaffolding and transport first, then one ticket per tool or resource, then integration and packaging.

` + ticketBatchFormat

// ticketSystemPrompt selects the generation template for the project type.
func ticketSystemPrompt(projectType session.ProjectType) string {
	switch projectType {
	case session.ProjectTypeBuildFeature:
		return ticketSystemPromptBuildFeature
	case session.ProjectTypeMcpServer:
		return ticketSystemPromptMCPServer
	default:
		return ticketSystemPromptGeneric
	}
}

// maxExcerpts bounds the repository file excerpts injected into the prompt.
const maxExcerpts = 8

// repoContextBlock renders the repository-analysis snapshot of a
// build_feature session into a prompt context block.
func repoContextBlock(analysis map[string]any) string {
	if len(analysis) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n## Repository context\n")

	if v, ok := analysis["file_tree"].(string); ok && v != "" {
		fmt.Fprintf(&b, "\nFile tree summary:\n%s\n", v)
	}
	if v, ok := analysis["stack"].(string); ok && v != "" {
		fmt.Fprintf(&b, "\nDetected stack: %s\n", v)
	}
	if entries, ok := analysis["entry_points"].([]any); ok && len(entries) > 0 {
		b.WriteString("\nEntry points:\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "- %v\n", e)
		}
	}
	if v, ok := analysis["patterns"].(string); ok && v != "" {
		fmt.Fprintf(&b, "\nEstablished patterns: %s\n", v)
	}
	if excerpts, ok := analysis["excerpts"].([]any); ok {
		n := 0
		for _, raw := range excerpts {
			if n >= maxExcerpts {
				break
			}
			ex, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			path, _ := ex["path"].(string)
			content, _ := ex["content"].(string)
			if path == "" || content == "" {
				continue
			}
			fmt.Fprintf(&b, "\n--- %s ---\n%s\n", path, content)
			n++
		}
	}
	return b.String()
}

// historyMessages converts the persisted dialogue into adapter turns.
func historyMessages(msgs []*ent.Message) []llm.Message {
	out := make([]llm.Message, 0, len(msgs))
	for _, m := range msgs {
		role := llm.RoleUser
		if m.Role == message.RoleAssistant {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}
