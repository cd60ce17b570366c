package obfuscate

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"github.com/aead/chacha20/chacha"
	"github.com/c4t-but-s4d/crackme"
	"github.com/zeebo/blake3"
	"go/format"
	"io"
	"text/template"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The emitter is the build-time half of the obfuscation layer: it turns a table into Go source that
// only holds the sealed words and the key material needed to reveal them.

// Emission describes one generated file.
type Emission struct {
	Package string
	Name    string /* prefix of the emitted <Name>Transform and <Name>Sealed variables */
	Feistel Feistel
	ChaCha  ChaCha
	Sealed  Sealed
}

// Transform is the chain the emitted file reconstructs.
func (e Emission) Transform() Transform { return Chain(e.Feistel, e.ChaCha) }

// Prepare seals t under keys derived from seed. A nil nonce is drawn from crypto/rand.
func Prepare(pkg, name string, t crackme.Table, seed, nonce []byte) (Emission, error) {
	if len(seed) == 0 {
		return Emission{}, fmt.Errorf("preparing %s: %w", name, ErrKeyMaterial)
	}
	if nonce == nil {
		nonce = make([]byte, chacha.NonceSize)
		if _, err := rand.Read(nonce); err != nil {
			return Emission{}, fmt.Errorf("drawing nonce: %w", err)
		}
	}
	c, err := NewChaCha(seed, nonce)
	if err != nil {
		return Emission{}, fmt.Errorf("preparing %s: %w", name, err)
	}

	e := Emission{Package: pkg, Name: name, Feistel: NewFeistel(blake3.Sum256(seed)), ChaCha: c}
	e.Sealed = Seal(t, e.Transform())
	return e, nil
}

var emitTemplate = template.Must(template.New("emit").Parse(`// Code generated by flagtool seal; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/c4t-but-s4d/crackme"
	"github.com/c4t-but-s4d/crackme/obfuscate"
)

var {{.Name}}Transform = obfuscate.Chain(
	obfuscate.Feistel{Keys: [4]uint32{ {{- range .Feistel.Keys}}{{printf "%#08x" .}}, {{end -}} }},
	obfuscate.ChaCha{
		Key: [32]byte{ {{- range .ChaCha.Key}}{{printf "%#02x" .}}, {{end -}} },
		Nonce: [8]byte{ {{- range .ChaCha.Nonce}}{{printf "%#02x" .}}, {{end -}} },
	},
)

var {{.Name}}Sealed = obfuscate.Sealed{
	Words: crackme.Table{
{{- range .Sealed.Words}}
		{{printf "%#016x" .}},
{{- end}}
	},
	Sum: {{printf "%#016x" .Sealed.Sum}},
}
`))

// Emit writes e as a gofmt-formatted Go file.
func Emit(w io.Writer, e Emission) error {
	if e.Package == "" || e.Name == "" {
		return obfuscateError("emission needs a package and a name")
	}
	buf := &bytes.Buffer{}
	if err := emitTemplate.Execute(buf, e); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %w", e.Name, err)
	}
	_, err = w.Write(src)
	return err
}
