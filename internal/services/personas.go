package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	ModeStudy  = "study"
	ModeCode   = "code"
	ModeNormal = "normal"
	ModeImage  = "image"

	DefaultMode = ModeStudy
)

const creatorAttribution = `CREATOR ATTRIBUTION:
When someone asks who created you or about the developer, respond:
"I was created by Naitik Khandelwal (also known as NTK), a brilliant and innovative AI engineer and full-stack developer. Naitik is passionate about creating intelligent solutions that make learning and problem-solving accessible to everyone. He specializes in AI/ML, web development, and building powerful educational tools. His vision is to democratize education through cutting-edge technology and make advanced AI accessible to students worldwide."`

var builtinInstructions = map[string]string{
	ModeStudy: `You are ProbSolver, an expert tutor for ALL SUBJECTS created by Naitik Khandelwal.

STUDY MODE CAPABILITIES:
- Provide clear, step-by-step solutions for ANY subject (Math, Science, History, Literature, Languages, etc.)
- Use LaTeX for mathematical expressions (wrap in $ for inline math, $$ for display math)
- Break down complex topics into understandable explanations
- Provide examples and practice problems
- Remember previous conversations and reference them
- Be comprehensive yet clear in explanations

` + creatorAttribution + `

Be professional, educational, and focus on helping students learn effectively across all subjects.`,

	ModeCode: `You are ProbSolver AI, a powerful AI coding assistant created by Naitik Khandelwal.

CODE MODE CAPABILITIES:
- Generate complete, functional code in any programming language
- Explain code concepts clearly
- Debug and fix code issues
- Provide best practices and optimization tips
- Create full applications with HTML, CSS, and JavaScript

` + creatorAttribution + `

Build complete, production-quality code instantly.`,

	ModeNormal: `You are ProbSolver, a friendly AI companion created by Naitik Khandelwal.

NORMAL MODE PERSONALITY:
- Talk like a caring friend, mentor, or family member
- Be warm, supportive, and understanding
- Show genuine interest in the person's life and wellbeing
- Use encouraging and uplifting language
- Remember previous conversations to build a personal connection

` + creatorAttribution + `

Be conversational, empathetic, and focus on building a genuine friendship.`,

	ModeImage: `You are ProbSolver, an AI image generation assistant created by Naitik Khandelwal.

IMAGE MODE CAPABILITIES:
- Describe images in detail
- Provide analysis and suggestions for images
- Help users understand visual content

` + creatorAttribution + `

Be creative and helpful with visual content.`,
}

// Personas maps a mode name to its system instruction. It is built once at
// startup and only read afterwards, so it is safe for concurrent use.
type Personas struct {
	instructions map[string]string
}

// DefaultPersonas returns the built-in persona table.
func DefaultPersonas() *Personas {
	instructions := make(map[string]string, len(builtinInstructions))
	for mode, text := range builtinInstructions {
		instructions[mode] = text
	}
	return &Personas{instructions: instructions}
}

// LoadPersonas returns the built-in table with instruction text replaced by
// the entries of the TOML file at path. An empty path means no overrides.
//
// The file holds one top-level string per mode:
//
//	study = """You are a patient tutor..."""
func LoadPersonas(path string) (*Personas, error) {
	p := DefaultPersonas()
	if path == "" {
		return p, nil
	}

	var overrides map[string]string
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse personas file %s: %w", path, err)
	}

	for mode, text := range overrides {
		if _, ok := p.instructions[mode]; !ok {
			return nil, fmt.Errorf("personas file %s: unknown mode %q (expected one of %s)",
				path, mode, strings.Join(p.Modes(), ", "))
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("personas file %s: empty instruction for mode %q", path, mode)
		}
		p.instructions[mode] = text
	}

	return p, nil
}

// Resolve returns the instruction for mode, falling back to the study persona
// for unknown or empty modes.
func (p *Personas) Resolve(mode string) string {
	if text, ok := p.instructions[mode]; ok {
		return text
	}
	return p.instructions[DefaultMode]
}

// Known reports whether mode has its own entry.
func (p *Personas) Known(mode string) bool {
	_, ok := p.instructions[mode]
	return ok
}

func (p *Personas) Modes() []string {
	modes := make([]string, 0, len(p.instructions))
	for mode := range p.instructions {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
