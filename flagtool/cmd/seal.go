package cmd

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/c4t-but-s4d/crackme/log"
	"github.com/c4t-but-s4d/crackme/obfuscate"
	"github.com/p7r0x7/vainpath"
	"github.com/spf13/cobra"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// sealCmd represents the seal command
var sealCmd = &cobra.Command{
	Use:   "seal SECRET",
	Short: "Generate the Go source of a sealed target table",
	Long: `Seal the target table of SECRET under a Feistel network and a ChaCha20 keystream and write
the result as Go source. The generated file holds no fingerprint in plaintext.`,
	Args: cobra.ExactArgs(1),
	Run:  runSeal,
}

func init() {
	rootCmd.AddCommand(sealCmd)
	sealCmd.Flags().StringP("output", "o", "macro_gen.go", "File to write, - for stdout")
	sealCmd.Flags().String("package", "revision", "Package clause of the generated file")
	sealCmd.Flags().String("name", "macro", "Prefix of the generated variables")
	sealCmd.Flags().String("seed", "", "Key derivation seed. By default, 32 random bytes are used")
}

func runSeal(cmd *cobra.Command, args []string) {
	secret := args[0]
	if len(secret) != crackme.FlagLength {
		fatal(fmt.Errorf("secret is %d bytes long, want %d", len(secret), crackme.FlagLength))
	}
	output, _ := cmd.Flags().GetString("output")
	pkg, _ := cmd.Flags().GetString("package")
	name, _ := cmd.Flags().GetString("name")
	seedFlag, _ := cmd.Flags().GetString("seed")

	seed := []byte(seedFlag)
	if len(seed) == 0 {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			fatal(err)
		}
	}

	t := crackme.TableOf(secret)
	e, err := obfuscate.Prepare(pkg, name, t, seed, nil)
	if err != nil {
		fatal(err)
	}
	if got := e.Transform().Reveal(e.Sealed.Words); got != t {
		fatal(fmt.Errorf("sealed table %016x does not reveal to itself", t.ID()))
	}

	buf := &bytes.Buffer{}
	if err := obfuscate.Emit(buf, e); err != nil {
		fatal(err)
	}
	if output == "-" {
		cmd.OutOrStdout().Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fatal(err)
	}
	log.Infof("sealed table %016x into %s", t.ID(), output)
	fmt.Fprintf(cmd.OutOrStdout(), "%016x -> %s\n", t.ID(), vainpath.Simplify(output))
}
