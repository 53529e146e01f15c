package docblock

import (
	"strings"

	"github.com/funvibe/typesniff/internal/typeparser"
	"github.com/viant/parsly"
)

// typedTags take a type as their first argument.
var typedTags = map[string]bool{
	"param":          true,
	"var":            true,
	"return":         true,
	"property":       true,
	"property-read":  true,
	"property-write": true,
	"throws":         true,
}

// subjectTags name a variable after their type.
var subjectTags = map[string]bool{
	"param":          true,
	"var":            true,
	"property":       true,
	"property-read":  true,
	"property-write": true,
}

// Parse parses the text of a /** ... */ comment. startLine is the line of
// the opening marker; tag lines are counted from it.
func Parse(comment string, startLine int) *DocBlock {
	var tags []Tag
	var description []string
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		text := cleanLine(line)
		if strings.HasPrefix(text, "@") {
			if tag, ok := parseTag(text, startLine+i); ok {
				tags = append(tags, tag)
				continue
			}
		}
		if text == "" {
			continue
		}
		if len(tags) > 0 {
			last := &tags[len(tags)-1]
			last.Text = strings.TrimSpace(last.Text + " " + text)
			continue
		}
		description = append(description, text)
	}
	return New(tags, strings.Join(description, "\n"), startLine)
}

func cleanLine(line string) string {
	text := strings.TrimSpace(line)
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)
	text = strings.TrimLeft(text, "*")
	return strings.TrimSpace(text)
}

func parseTag(text string, line int) (Tag, bool) {
	cursor := parsly.NewCursor("", []byte(text), 0)
	matched := cursor.MatchOne(tagNameMatcher)
	if matched.Code != tagNameToken {
		return Tag{}, false
	}
	tag := Tag{Name: matched.Text(cursor)[1:], Line: line}
	base := baseTagName(tag.Name)

	if typedTags[base] {
		if subjectTags[base] {
			if v := cursor.MatchAfterOptional(whitespaceMatcher, variableMatcher); v.Code == variableToken {
				tag.Subject = normalizeVariable(v.Text(cursor))
				tag.Text = rest(cursor)
				return tag, true
			}
		}
		if t := cursor.MatchAfterOptional(whitespaceMatcher, typeExprMatcher); t.Code == typeExprToken {
			tag.RawType = t.Text(cursor)
			tag.Type = typeparser.ParseOrUndefined(tag.RawType)
		}
		if subjectTags[base] {
			if v := cursor.MatchAfterOptional(whitespaceMatcher, variableMatcher); v.Code == variableToken {
				tag.Subject = normalizeVariable(v.Text(cursor))
			}
		}
	}
	tag.Text = rest(cursor)
	return tag, true
}

// baseTagName strips tool prefixes: @psalm-param and @phpstan-param are @param.
func baseTagName(name string) string {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"psalm-", "phpstan-", "phan-"} {
		if strings.HasPrefix(lower, prefix) {
			return lower[len(prefix):]
		}
	}
	return lower
}

func normalizeVariable(v string) string {
	v = strings.TrimPrefix(v, "&")
	return strings.TrimPrefix(v, "...")
}

func rest(cursor *parsly.Cursor) string {
	if cursor.Pos >= cursor.InputSize {
		return ""
	}
	return strings.TrimSpace(string(cursor.Input[cursor.Pos:]))
}
