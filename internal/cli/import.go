package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/database"
	"github.com/example/vocabsrs/internal/importer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import words from an Excel or CSV file",
		Long: "Import words from an .xlsx sheet or a CSV file. A CSV whose " +
			"header carries the full record schema restores scheduling state " +
			"as well; otherwise each row is treated as a new word.",
		Args: cobra.ExactArgs(1),
		Run:  runImport,
	}
	cmd.Flags().String("sheet", "", "Excel sheet name (default: first sheet)")
	cmd.Flags().String("column", "A", "Excel column holding the words")
	cmd.Flags().Int("start-row", 2, "First Excel row to read")
	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	db, err := database.Connect(database.Config{
		Driver: cfg.Database.Type,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		exitErr("connect database", err)
	}
	defer closeDB(db)

	impCfg := importer.DefaultConfig()
	impCfg.FilePath = args[0]
	if sheet, _ := cmd.Flags().GetString("sheet"); sheet != "" {
		impCfg.SheetName = sheet
	}
	if col, _ := cmd.Flags().GetString("column"); col != "" {
		impCfg.WordColumn = col
	}
	if row, _ := cmd.Flags().GetInt("start-row"); row > 0 {
		impCfg.StartRow = row
	}

	result, err := importer.ImportWords(database.NewItemRepository(db), impCfg)
	if err != nil {
		exitErr("import", err)
	}
	fmt.Printf("processed %d: %d created, %d skipped, %d errors\n",
		result.TotalProcessed, result.Created, result.Skipped, len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("  %s\n", e)
	}
}
