package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ShayCichocki/songsmith/internal/debuglog"
	"github.com/ShayCichocki/songsmith/internal/style"
	"github.com/ShayCichocki/songsmith/internal/textkit"
)

// ErrEmptyDescription is returned when Enhance gets a blank description.
var ErrEmptyDescription = errors.New("description is empty")

const systemPrompt = `You write style prompts for a music generation model.
Given a short description of a song, reply with a single JSON object and nothing else:
{"title": string, "genres": [string], "moods": [string], "instruments": [string], "vocal": string, "tempo": integer, "tags": [string]}
Keep each entry to a few words. "tags" are lyric meta tags such as song sections or vocal directions, without brackets.`

// Result is an enhanced style prompt.
type Result struct {
	Title string
	Spec  style.Spec
	// Style is Spec built into a prompt string.
	Style string
	// Tags are canonical bracketed meta tags.
	Tags []string
}

// Enhancer builds style prompts from descriptions.
type Enhancer struct {
	llm    Completer
	maxLen int
	log    *debuglog.Logger
}

// NewEnhancer creates an Enhancer. maxLen caps the built style prompt.
func NewEnhancer(llm Completer, maxLen int, log *debuglog.Logger) *Enhancer {
	return &Enhancer{llm: llm, maxLen: maxLen, log: log}
}

// Enhance asks the model for a style prompt and tags for description.
func (e *Enhancer) Enhance(ctx context.Context, description string) (Result, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Result{}, ErrEmptyDescription
	}

	e.log.Log("[assist] enhancing %q", description)
	reply, err := e.llm.Complete(ctx, systemPrompt, buildPrompt(description))
	if err != nil {
		return Result{}, fmt.Errorf("enhance: %w", err)
	}

	res, err := parseResponse(reply, e.maxLen)
	if err != nil {
		e.log.Log("[assist] unparseable reply: %s", reply)
		return Result{}, fmt.Errorf("enhance: %w", err)
	}
	return res, nil
}

func buildPrompt(description string) string {
	return "Song description:\n" + description
}

type reply struct {
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Moods       []string `json:"moods"`
	Instruments []string `json:"instruments"`
	Vocal       string   `json:"vocal"`
	Tempo       int      `json:"tempo"`
	Tags        []string `json:"tags"`
}

// parseResponse extracts the JSON object from a model reply, which may be
// wrapped in prose or a code fence, and normalizes it.
func parseResponse(text string, maxLen int) (Result, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return Result{}, fmt.Errorf("no JSON object in reply")
	}

	var r reply
	if err := json.Unmarshal([]byte(text[start:end+1]), &r); err != nil {
		return Result{}, fmt.Errorf("parse reply: %w", err)
	}

	spec := style.Spec{
		Genres:      r.Genres,
		Moods:       r.Moods,
		Instruments: r.Instruments,
		Vocal:       r.Vocal,
	}
	if r.Tempo > 0 && r.Tempo < 400 {
		spec.Tempo = r.Tempo
	}

	res := Result{
		Title: strings.TrimSpace(r.Title),
		Spec:  spec,
		Style: style.Build(spec, maxLen),
	}
	if res.Style == "" {
		return Result{}, fmt.Errorf("reply has no style entries")
	}

	seen := make(map[string]bool)
	for _, raw := range r.Tags {
		tag := textkit.OptimizeTags(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		res.Tags = append(res.Tags, tag)
	}
	return res, nil
}
