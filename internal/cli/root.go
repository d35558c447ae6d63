// Package cli implements the roughcut CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cutroom/roughcut/internal/catalog"
	"github.com/cutroom/roughcut/internal/store"
)

var (
	dbPath    string
	outputDir string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "roughcut",
	Short: "Assemble media assets into a timeline and export CMX3600 EDLs",
	Long:  "roughcut builds an ordered, grouped first-pass timeline from catalogued media assets and renders it as a CMX3600 Edit Decision List.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $ROUGHCUT_DB or ./data/roughcut.db)")
	RootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "exports", "Directory for exported EDL files")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("ROUGHCUT_DB"); env != "" {
		return env
	}
	return "data/roughcut.db"
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func openCatalog() (*catalog.SQLiteCatalog, error) {
	return catalog.NewSQLiteCatalog(getDBPath())
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("marshal output", err)
	}
	fmt.Println(string(data))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
