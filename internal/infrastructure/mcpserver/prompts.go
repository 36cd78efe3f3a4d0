package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	promptResearch = "research_topic"
	promptCompare  = "compare_options"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt(promptResearch,
		mcp.WithPromptDescription("Research a topic with one or more web searches"),
		mcp.WithArgument("topic", mcp.ArgumentDescription("Topic to research"), mcp.RequiredArgument()),
		mcp.WithArgument("depth", mcp.ArgumentDescription("quick or thorough (default quick)")),
	), s.handleResearchPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt(promptCompare,
		mcp.WithPromptDescription("Compare several options using current web sources"),
		mcp.WithArgument("options", mcp.ArgumentDescription("Comma separated list of options"), mcp.RequiredArgument()),
		mcp.WithArgument("criteria", mcp.ArgumentDescription("What to compare them on")),
	), s.handleComparePrompt)
}

func (s *Server) handleResearchPrompt(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := strings.TrimSpace(req.Params.Arguments["topic"])
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Research %q using the %s tool.\n", topic, toolSearch)
	switch strings.ToLower(req.Params.Arguments["depth"]) {
	case "thorough":
		b.WriteString("Run several searches covering background, recent developments and open questions, then synthesise the findings with sources.")
	default:
		b.WriteString("One focused search is enough; summarise the key points with sources.")
	}

	return mcp.NewGetPromptResult("Research "+topic, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(b.String())),
	}), nil
}

func (s *Server) handleComparePrompt(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var options []string
	for _, opt := range strings.Split(req.Params.Arguments["options"], ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("at least two options are required")
	}

	criteria := strings.TrimSpace(req.Params.Arguments["criteria"])
	if criteria == "" {
		criteria = "features, maturity and community adoption"
	}

	text := fmt.Sprintf("Compare %s on %s. Use the %s tool once per option, then present a table and a recommendation.",
		strings.Join(options, ", "), criteria, toolSearch)

	return mcp.NewGetPromptResult("Compare "+strings.Join(options, " vs "), []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}
