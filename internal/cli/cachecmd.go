package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/cache"
)

// newCacheCmd creates the cache command for managing the serve result
// cache on disk.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}
	cmd.AddCommand(newCacheDirCmd())
	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return err
			}
			store, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.(*cache.FileCache).Clear(); err != nil {
				return err
			}
			printSuccess("cleared cache at %s", dir)
			return nil
		},
	}
}
