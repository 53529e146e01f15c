package sitefile

import (
	"path/filepath"
	"testing"

	"github.com/funvibe/typesniff/internal/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "user.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "src/Model/User.php", f.Path)

	groups := f.Groups()
	require.Len(t, groups, 2)
	require.True(t, groups[0].Context.HasClass())
	assert.Equal(t, `\App\Model\Base`, groups[0].Context.Parent.Name)
	assert.False(t, groups[1].Context.HasClass())

	testCases := []struct {
		description string
		label       string
		line        int
		expect      subject.Classification
	}{
		{description: "array literal", label: "constant ROLES", line: 8, expect: subject.Ok},
		{description: "int literal", label: "constant LIMIT", line: 11, expect: subject.ValueTypeMismatch},
		{description: "typed array", label: "property $ids", line: 14, expect: subject.NarrowerDocType},
		{description: "docblock param", label: "parameter $handler", line: 18, expect: subject.Ok},
		{description: "null default", label: "parameter $limit", line: 19, expect: subject.RedundantDocType},
		{description: "static", label: "return type of withHandler()", line: 20, expect: subject.RedundantDocType},
		{description: "parent", label: "return type of base()", line: 25, expect: subject.RedundantDocType},
	}
	class := groups[0]
	require.Len(t, class.Subjects, len(testCases))
	for i, testCase := range testCases {
		s := class.Subjects[i]
		assert.Equal(t, testCase.label, s.Label(), testCase.description)
		assert.Equal(t, testCase.line, s.Line(), testCase.description)
		assert.Equal(t, testCase.expect, subject.Classify(s, class.Context), testCase.description)
	}

	free := groups[1]
	require.Len(t, free.Subjects, 2)
	assert.Equal(t, subject.MissingNativeType, subject.Classify(free.Subjects[0], free.Context))
	assert.Equal(t, 41, free.Subjects[0].LineFor(subject.MissingNativeType), "reported at the declaration")
	assert.Equal(t, subject.MissingDocType, subject.Classify(free.Subjects[1], free.Context))
	assert.Equal(t, 41, free.Subjects[1].Line())

	assert.Len(t, f.Subjects(), 9)
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		description string
		yaml        string
	}{
		{description: "unknown kind", yaml: "sites:\n  - kind: method\n    name: x\n"},
		{description: "missing name", yaml: "sites:\n  - kind: property\n"},
		{description: "doc and docblock", yaml: "sites:\n  - kind: property\n    name: x\n    doc: int\n    docblock: \"/** @var int */\"\n"},
		{description: "unknown literal", yaml: "sites:\n  - kind: constant\n    name: X\n    literal: regex\n"},
		{description: "negative position", yaml: "sites:\n  - kind: parameter\n    name: x\n    position: -1\n"},
		{description: "class without name", yaml: "classes:\n  - sites: []\n"},
		{description: "malformed", yaml: "sites: {\n"},
	}
	for _, testCase := range testCases {
		_, err := Parse([]byte(testCase.yaml), "sites.yaml")
		assert.Error(t, err, testCase.description)
	}
}

func TestParseDefaultsPath(t *testing.T) {
	f, err := Parse([]byte("sites:\n  - kind: return\n    name: run\n    native: void\n    line: 3\n"), "run.yaml")
	require.NoError(t, err)
	assert.Equal(t, "run.yaml", f.Path)
	require.Len(t, f.Subjects(), 1)
	assert.Equal(t, subject.MissingDocType, subject.Classify(f.Subjects()[0], f.Groups()[0].Context))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.yaml"))
	assert.Error(t, err)
}
