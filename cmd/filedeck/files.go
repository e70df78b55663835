package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almegatsro/filedeck/internal/filestore"
)

var flagYes bool

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage text files in the deck directory",
	Long: `Create, view, edit and delete plain text files. All operations are
confined to the deck directory; names with path separators or parent
references are rejected.

Examples:
  filedeck files list
  filedeck files create notes.txt
  filedeck files write notes.txt
  filedeck files append notes.txt
  filedeck files view notes.txt
  filedeck files erase notes.txt
  filedeck files delete notes.txt --yes`,
}

func init() {
	filesCmd.PersistentFlags().BoolVar(&flagYes, "yes", false, "Skip confirmation prompts")

	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesCreateCmd)
	filesCmd.AddCommand(filesViewCmd)
	filesCmd.AddCommand(filesWriteCmd)
	filesCmd.AddCommand(filesAppendCmd)
	filesCmd.AddCommand(filesEraseCmd)
	filesCmd.AddCommand(filesDeleteCmd)
}

// openStore opens the deck directory, creating it if needed.
func openStore() *filestore.Store {
	store, err := filestore.New(flagDir)
	if err != nil {
		logger.Error("cannot open deck directory", "dir", flagDir, "error", err)
		os.Exit(1)
	}
	logger.Debug("deck directory opened", "dir", store.Base())
	return store
}

// confirm asks a y/n question on the terminal. --yes answers for the user.
func confirm(prompt string) bool {
	if flagYes {
		return true
	}
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// readLines collects stdin lines until a lone "EOF" line or end of input.
func readLines() []string {
	fmt.Println("Enter lines, finish with a single line containing EOF:")
	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "EOF" {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List files in the deck directory",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		names, err := store.List()
		if err != nil {
			logger.Error("cannot list files", "error", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("The deck is empty.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var filesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		if err := store.Create(args[0]); err != nil {
			logger.Error("cannot create file", "name", args[0], "error", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s\n", args[0])
	},
}

var filesViewCmd = &cobra.Command{
	Use:   "view <name>",
	Short: "Print a file's content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		content, err := store.Read(args[0])
		if err != nil {
			logger.Error("cannot read file", "name", args[0], "error", err)
			os.Exit(1)
		}
		if content == "" {
			fmt.Printf("%s is empty.\n", args[0])
			return
		}
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
	},
}

var filesWriteCmd = &cobra.Command{
	Use:   "write <name>",
	Short: "Replace a file's content from stdin",
	Long: `Replace the file's entire content with lines read from stdin,
terminated by a single line containing EOF. The file is created if it
does not exist.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		name := args[0]

		exists, err := store.Exists(name)
		if err != nil {
			logger.Error("cannot check file", "name", name, "error", err)
			os.Exit(1)
		}
		if exists && !confirm(fmt.Sprintf("%s exists; overwrite its content?", name)) {
			fmt.Println("Cancelled.")
			return
		}

		lines := readLines()
		content := strings.Join(lines, "\n")
		if len(lines) > 0 {
			content += "\n"
		}
		if err := store.Overwrite(name, content); err != nil {
			logger.Error("cannot write file", "name", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d line(s) to %s\n", len(lines), name)
	},
}

var filesAppendCmd = &cobra.Command{
	Use:   "append <name>",
	Short: "Append stdin lines to a file",
	Long: `Append lines read from stdin, terminated by a single line containing
EOF. If the file does not exist you are asked whether to create it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		name := args[0]

		exists, err := store.Exists(name)
		if err != nil {
			logger.Error("cannot check file", "name", name, "error", err)
			os.Exit(1)
		}
		if !exists && !confirm(fmt.Sprintf("%s does not exist; create it?", name)) {
			fmt.Println("Cancelled.")
			return
		}

		lines := readLines()
		if len(lines) == 0 {
			fmt.Println("Nothing to append.")
			return
		}
		if err := store.Append(name, lines); err != nil {
			logger.Error("cannot append to file", "name", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Appended %d line(s) to %s\n", len(lines), name)
	},
}

var filesEraseCmd = &cobra.Command{
	Use:   "erase <name>",
	Short: "Empty a file's content",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		name := args[0]

		if !confirm(fmt.Sprintf("Erase all content of %s?", name)) {
			fmt.Println("Cancelled.")
			return
		}
		if err := store.Truncate(name); err != nil {
			logger.Error("cannot erase file", "name", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Erased %s\n", name)
	},
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a file permanently",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		name := args[0]

		if !confirm(fmt.Sprintf("Permanently delete %s?", name)) {
			fmt.Println("Cancelled.")
			return
		}
		if err := store.Delete(name); err != nil {
			logger.Error("cannot delete file", "name", name, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %s\n", name)
	},
}
