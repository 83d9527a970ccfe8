package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andaru/arxml/arerr"
	"github.com/andaru/arxml/model"
	"github.com/andaru/arxml/schema"
	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nsR40 = "http://autosar.org/schema/r4.0"

func fields(kv ...string) map[model.Key]string {
	m := map[model.Key]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[model.Key(kv[i])] = kv[i+1]
	}
	return m
}

func bucketMaps(b *model.Bucket) map[string]map[model.Key]string {
	m := map[string]map[model.Key]string{}
	for _, name := range b.Names() {
		m[name] = b.Record(name).Map()
	}
	return m
}

func TestParseFileEcuExtract(t *testing.T) {
	check := assert.New(t)
	doc, err := ParseFile(filepath.Join("testdata", "EcuExtract.arxml"))
	require.NoError(t, err)

	check.Equal(nsR40, doc.Namespace)
	check.Equal("4.2.2", doc.Release)

	check.Equal(map[string]map[model.Key]string{
		"EngineSpeed":  fields("name", "EngineSpeed", "length", "16", "description", "Engine speed in rpm"),
		"GearPosition": fields("name", "GearPosition"),
		"VehicleSpeed": fields("name", "VehicleSpeed"),
	}, bucketMaps(doc.Signals()))
	check.Equal([]string{"EngineSpeed", "GearPosition", "VehicleSpeed"}, doc.Signals().Names())

	check.Equal(map[string]map[model.Key]string{
		"CM1": fields("name", "CM1", "description", "Linear scaling", "length", "4"),
	}, bucketMaps(doc.CompuMethods()))

	check.Equal(map[string]map[model.Key]string{
		"EngineStatus": fields("name", "EngineStatus", "length", "8"),
	}, bucketMaps(doc.PDUs()))

	check.Equal(map[string]map[model.Key]string{
		"F1": fields("name", "F1", "length", "8"),
	}, bucketMaps(doc.Frames()))

	check.Equal(map[string]map[model.Key]string{
		"CAN1": fields("name", "CAN1"),
	}, bucketMaps(doc.Networks()))

	// an I-SIGNAL nested in a FRAME is not descended into
	check.Nil(doc.Signals().Record("Hidden"))
	check.Equal(model.Missing, doc.Signals().Record("GearPosition").Get(model.KeyLength))
}

func TestParseScenarios(t *testing.T) {
	for _, tc := range []struct {
		name   string
		body   string
		bucket model.BucketName
		want   map[string]map[model.Key]string
	}{
		{
			name:   "frame name and length",
			body:   `<FRAME><SHORT-NAME>F1</SHORT-NAME><FRAME-LENGTH>8</FRAME-LENGTH></FRAME>`,
			bucket: model.Frames,
			want:   map[string]map[model.Key]string{"F1": fields("name", "F1", "length", "8")},
		},
		{
			name:   "compu-method split over two containers",
			body:   `<COMPU-METHOD><SHORT-NAME>CM1</SHORT-NAME><L-2>identity</L-2></COMPU-METHOD><COMPU-METHOD><SHORT-NAME>CM1</SHORT-NAME><LENGTH>2</LENGTH></COMPU-METHOD>`,
			bucket: model.CompuMethods,
			want:   map[string]map[model.Key]string{"CM1": fields("name", "CM1", "description", "identity", "length", "2")},
		},
		{
			name:   "later container overrides overlapping fields",
			body:   `<SIGNAL-I-PDU><SHORT-NAME>P1</SHORT-NAME><LENGTH>8</LENGTH></SIGNAL-I-PDU><X><SIGNAL-I-PDU><SHORT-NAME>P1</SHORT-NAME><LENGTH>64</LENGTH></SIGNAL-I-PDU></X>`,
			bucket: model.PDUs,
			want:   map[string]map[model.Key]string{"P1": fields("name", "P1", "length", "64")},
		},
		{
			name:   "physical channel three levels deep",
			body:   `<A><B><C><PHYSICAL-CHANNEL><SHORT-NAME>CAN1</SHORT-NAME></PHYSICAL-CHANNEL></C></B></A>`,
			bucket: model.Networks,
			want:   map[string]map[model.Key]string{"CAN1": fields("name", "CAN1")},
		},
		{
			name:   "i-signal and system-signal share the signals bucket",
			body:   `<I-SIGNAL><SHORT-NAME>S1</SHORT-NAME><LENGTH>1</LENGTH></I-SIGNAL><SYSTEM-SIGNAL><SHORT-NAME>S1</SHORT-NAME><L-2>speed</L-2></SYSTEM-SIGNAL>`,
			bucket: model.Signals,
			want:   map[string]map[model.Key]string{"S1": fields("name", "S1", "length", "1", "description", "speed")},
		},
		{
			name:   "attributes below a direct child are not copied",
			body:   `<FRAME><SHORT-NAME>F1</SHORT-NAME><DESC><L-2>nested</L-2></DESC></FRAME>`,
			bucket: model.Frames,
			want:   map[string]map[model.Key]string{"F1": fields("name", "F1")},
		},
		{
			name:   "text is copied verbatim",
			body:   "<I-SIGNAL><SHORT-NAME>S1</SHORT-NAME><L-2> padded\n</L-2></I-SIGNAL>",
			bucket: model.Signals,
			want:   map[string]map[model.Key]string{"S1": fields("name", "S1", "description", " padded\n")},
		},
		{
			name:   "foreign namespace containers are ignored",
			body:   `<FRAME xmlns="urn:other"><SHORT-NAME>F9</SHORT-NAME></FRAME>`,
			bucket: model.Frames,
			want:   map[string]map[model.Key]string{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			input := `<AUTOSAR xmlns="` + nsR40 + `"><AR-PACKAGES>` + tc.body + `</AR-PACKAGES></AUTOSAR>`
			doc, err := Parse(strings.NewReader(input))
			require.NoError(t, err)
			check.Equal(tc.want, bucketMaps(doc.Bucket(tc.bucket)))
			for _, name := range model.BucketNames() {
				if name != tc.bucket {
					check.Equal(0, doc.Bucket(name).Len(), "bucket %s", name)
				}
			}
		})
	}
}

func TestParseMissingName(t *testing.T) {
	const input = `<AUTOSAR xmlns="` + nsR40 + `"><AR-PACKAGES>
<FRAME><FRAME-LENGTH>2</FRAME-LENGTH></FRAME>
<FRAME><L-2>second</L-2></FRAME>
<FRAME><SHORT-NAME>F1</SHORT-NAME></FRAME>
</AR-PACKAGES></AUTOSAR>`

	for _, tc := range []struct {
		policy  MissingNamePolicy
		want    map[string]map[model.Key]string
		wantErr bool
	}{
		{
			policy: SkipUnnamed,
			want:   map[string]map[model.Key]string{"F1": fields("name", "F1")},
		},
		{
			policy: KeepUnnamed,
			want: map[string]map[model.Key]string{
				model.Missing: fields("length", "2", "description", "second"),
				"F1":          fields("name", "F1"),
			},
		},
		{
			policy:  RejectUnnamed,
			wantErr: true,
		},
	} {
		t.Run(tc.policy.String(), func(t *testing.T) {
			check := assert.New(t)
			doc, err := Parse(strings.NewReader(input), WithMissingName(tc.policy))
			if tc.wantErr {
				check.Nil(doc)
				if e, ok := arerr.As(err); check.True(ok) {
					check.Equal(arerr.TagMissingElement, e.Tag)
					check.Equal("SHORT-NAME", e.Element)
					check.Equal("/AUTOSAR/AR-PACKAGES/FRAME", e.Path)
					check.Equal(nsR40, e.Namespace)
				}
				return
			}
			require.NoError(t, err)
			check.Equal(tc.want, bucketMaps(doc.Frames()))
		})
	}
	assert.Equal(t, "MissingNamePolicy(7)", MissingNamePolicy(7).String())
}

func TestParseIdempotent(t *testing.T) {
	check := assert.New(t)
	p := New()
	path := filepath.Join("testdata", "EcuExtract.arxml")
	first, err := p.ParseFile(path)
	require.NoError(t, err)
	second, err := p.ParseFile(path)
	require.NoError(t, err)

	check.NotSame(first, second)
	check.True(first.Equal(second))
	check.Equal(7, first.Len())
}

func TestParseNamespace(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		opts    []Option
		wantNS  string
		frames  []string
		wantTag arerr.Tag
	}{
		{
			name:   "prefixed root resolves through the element namespace",
			input:  `<ar:AUTOSAR xmlns:ar="` + nsR40 + `"><ar:FRAME><ar:SHORT-NAME>F1</ar:SHORT-NAME></ar:FRAME></ar:AUTOSAR>`,
			wantNS: nsR40,
			frames: []string{"F1"},
		},
		{
			name:   "explicit namespace",
			input:  `<AUTOSAR xmlns="` + nsR40 + `"><FRAME><SHORT-NAME>F1</SHORT-NAME></FRAME><FRAME xmlns="urn:vendor"><SHORT-NAME>V1</SHORT-NAME></FRAME></AUTOSAR>`,
			opts:   []Option{WithNamespace("urn:vendor")},
			wantNS: "urn:vendor",
			frames: []string{"V1"},
		},
		{
			name:   "explicit empty namespace for unqualified documents",
			input:  `<AUTOSAR><FRAME><SHORT-NAME>F1</SHORT-NAME></FRAME></AUTOSAR>`,
			opts:   []Option{WithNamespace("")},
			frames: []string{"F1"},
		},
		{
			name:    "unqualified document",
			input:   `<AUTOSAR><FRAME><SHORT-NAME>F1</SHORT-NAME></FRAME></AUTOSAR>`,
			wantTag: arerr.TagMissingNamespace,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc, err := Parse(strings.NewReader(tc.input), tc.opts...)
			if tc.wantTag != "" {
				check.Nil(doc)
				check.True(arerr.Is(err, tc.wantTag), "got %v", err)
				return
			}
			require.NoError(t, err)
			check.Equal(tc.wantNS, doc.Namespace)
			check.Equal(tc.frames, doc.Frames().Names())
		})
	}
}

func TestParseErrors(t *testing.T) {
	check := assert.New(t)

	doc, err := ParseFile(filepath.Join("testdata", "Malformed.arxml"))
	check.Nil(doc)
	if e, ok := arerr.As(err); check.True(ok, "got %v", err) {
		check.Equal(arerr.TagMalformedDocument, e.Tag)
		check.Equal(filepath.Join("testdata", "Malformed.arxml"), e.Path)
		check.NotNil(e.Cause())
	}

	doc, err = Parse(strings.NewReader(`<AUTOSAR xmlns="` + nsR40 + `"><FRAME>`))
	check.Nil(doc)
	check.True(arerr.Is(err, arerr.TagMalformedDocument), "got %v", err)

	doc, err = ParseFile(filepath.Join("testdata", "does-not-exist.arxml"))
	check.Nil(doc)
	check.True(os.IsNotExist(errors.Cause(err)), "got %v", err)
	_, ok := arerr.As(err)
	check.False(ok)

	doc, err = New().ParseTree(&xmlquery.Node{Type: xmlquery.DocumentNode})
	check.Nil(doc)
	check.True(arerr.Is(err, arerr.TagMalformedDocument), "got %v", err)

	doc, err = New().ParseTree(nil)
	check.Nil(doc)
	check.True(arerr.Is(err, arerr.TagMalformedDocument), "got %v", err)
}

func TestParseByteOrderMark(t *testing.T) {
	check := assert.New(t)
	doc, err := ParseFile(filepath.Join("testdata", "Bom.arxml"))
	require.NoError(t, err)
	check.Equal("http://autosar.org/3.2.3", doc.Namespace)
	check.Equal("3.2.3", doc.Release)
	check.Equal(map[string]map[model.Key]string{
		"F2": fields("name", "F2", "length", "4"),
	}, bucketMaps(doc.Frames()))
}

func TestParseTree(t *testing.T) {
	check := assert.New(t)
	tree, err := xmlquery.Parse(strings.NewReader(
		`<AUTOSAR xmlns="` + nsR40 + `"><E><PHYSICAL-CHANNEL><SHORT-NAME>LIN1</SHORT-NAME></PHYSICAL-CHANNEL></E></AUTOSAR>`))
	require.NoError(t, err)

	doc, err := New().ParseTree(tree)
	require.NoError(t, err)
	check.Equal([]string{"LIN1"}, doc.Networks().Names())

	// the root element itself is accepted in place of the document node
	root := xmlquery.FindOne(tree, "/*")
	require.NotNil(t, root)
	fromRoot, err := New().ParseTree(root)
	require.NoError(t, err)
	check.True(doc.Equal(fromRoot))
}

func TestParseValidator(t *testing.T) {
	check := assert.New(t)
	var seen []string
	reject := schema.ValidatorFunc(func(root *xmlquery.Node, release string) error {
		seen = append(seen, root.Data+" "+release)
		if release != "4.2.2" {
			return errors.Errorf("release %q not supported", release)
		}
		return nil
	})

	doc, err := ParseFile(filepath.Join("testdata", "EcuExtract.arxml"), WithValidator(reject))
	require.NoError(t, err)
	check.Equal(1, doc.Frames().Len())

	doc, err = ParseFile(filepath.Join("testdata", "Bom.arxml"), WithValidator(reject))
	check.Nil(doc)
	if e, ok := arerr.As(err); check.True(ok, "got %v", err) {
		check.Equal(arerr.TagInvalidDocument, e.Tag)
		check.Equal("http://autosar.org/3.2.3", e.Namespace)
		check.EqualError(e.Cause(), `release "3.2.3" not supported`)
	}
	check.Equal([]string{"AUTOSAR 4.2.2", "AUTOSAR 3.2.3"}, seen)

	// a nil validator restores the default
	doc, err = ParseFile(filepath.Join("testdata", "Bom.arxml"), WithValidator(reject), WithValidator(nil))
	require.NoError(t, err)
	check.Equal([]string{"F2"}, doc.Frames().Names())
}
