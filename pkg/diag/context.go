package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context is a range of text in a piece of source code. It is used for
// errors that point at part of the source, like lex errors, parse errors and
// traceback entries.
type Context struct {
	Name   string
	Source string
	Ranging

	savedShowInfo *rangeShowInfo
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range(), nil}
}

// Information about the source range that is needed for showing.
type rangeShowInfo struct {
	// Head is the text between the last line boundary before the culprit and
	// the culprit itself. Empty if the culprit starts a line.
	Head string
	// Culprit is Source[From:To], with a trailing newline stripped.
	Culprit string
	// Tail is the text between the culprit and the next line boundary. Empty
	// if the culprit ends a line.
	Tail string
	// BeginLine and EndLine are 1-based line numbers of the first and last
	// characters of the culprit.
	BeginLine int
	EndLine   int
}

// Variables controlling the style of the culprit.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceHolder = "^"
)

func (c *Context) showInfo() *rangeShowInfo {
	if c.savedShowInfo != nil {
		return c.savedShowInfo
	}

	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := lastLine(before)
	beginLine := strings.Count(before, "\n") + 1

	// If the culprit ends with a newline, strip it. Otherwise the tail may be
	// nonempty.
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}

	endLine := beginLine + strings.Count(culprit, "\n")

	c.savedShowInfo = &rangeShowInfo{head, culprit, tail, beginLine, endLine}
	return c.savedShowInfo
}

// Show shows the context, by naming the source, the line range, and an
// excerpt of the source with the culprit highlighted.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return (c.Name + ", " + c.lineRange() +
		"\n" + sourceIndent + c.relevantSource(sourceIndent))
}

// ShowCompact is like Show, with no line break between the description of the
// position and the source excerpt.
func (c *Context) ShowCompact(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	// Extra indent so that following lines line up with the first line.
	descIndent := strings.Repeat(" ", utf8.RuneCountInString(desc))
	return desc + c.relevantSource(sourceIndent+descIndent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	info := c.showInfo()

	if info.BeginLine == info.EndLine {
		return fmt.Sprintf("line %d:", info.BeginLine)
	}
	return fmt.Sprintf("line %d-%d:", info.BeginLine, info.EndLine)
}

func (c *Context) relevantSource(sourceIndent string) string {
	info := c.showInfo()

	var sb strings.Builder
	sb.WriteString(info.Head)

	culprit := info.Culprit
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}

	sb.WriteString(info.Tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens
	// to be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
