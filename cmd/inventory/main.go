package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mytheresa/inventory-system/app/items"
	"github.com/mytheresa/inventory-system/app/products"
	"github.com/mytheresa/inventory-system/app/search"
	"github.com/mytheresa/inventory-system/app/seed"
	"github.com/mytheresa/inventory-system/internal/config"
	"github.com/mytheresa/inventory-system/internal/logger"
	"github.com/mytheresa/inventory-system/internal/metrics"
	"github.com/mytheresa/inventory-system/models"
	"github.com/spf13/cobra"
)

// shop is everything a command needs, built once per invocation.
type shop struct {
	cfg      config.Config
	log      *slog.Logger
	metrics  *metrics.Metrics
	catalog  *models.Catalog
	search   *search.Engine
	items    *items.Editor
	products *products.Editor
}

func openShop(cfg config.Config, log *slog.Logger, confirm *promptConfirmer) (*shop, error) {
	data, err := seed.Read(cfg.Catalog.SeedPath)
	if err != nil {
		return nil, err
	}
	doc, err := seed.Parse(data)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.FirstItemID > 0 {
		doc.FirstItemID = cfg.Catalog.FirstItemID
	}
	if cfg.Catalog.FirstProductID > 0 {
		doc.FirstProductID = cfg.Catalog.FirstProductID
	}

	cat := models.NewCatalog(doc.Generator(), models.WithLogger(log))
	if err := doc.Hydrate(cat); err != nil {
		return nil, err
	}

	m := metrics.New()
	m.ObserveCatalog(cat.AllItems().Len(), cat.AllProducts().Len())

	s := &shop{
		cfg:      cfg,
		log:      log,
		metrics:  m,
		catalog:  cat,
		search:   search.NewEngine(log, m),
		items:    items.NewEditor(cat, confirm, items.WithLogger(log), items.WithObserver(m)),
		products: products.NewEditor(cat, confirm, products.WithLogger(log), products.WithObserver(m)),
	}
	log.Debug("catalog loaded", "items", cat.AllItems().Len(), "products", cat.AllProducts().Len())
	return s, nil
}

func (s *shop) catalogChanged() {
	s.metrics.ObserveCatalog(s.catalog.AllItems().Len(), s.catalog.AllProducts().Len())
}

type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
	yes bool
}

// Confirm prints prompt and reads a y/yes answer. --yes answers for the user.
func (c *promptConfirmer) Confirm(prompt string) bool {
	if c.yes {
		return true
	}
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath  string
		dumpMetrics bool
		s           *shop
	)
	confirm := &promptConfirmer{in: bufio.NewReader(in), out: out}

	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Keep the part and product records of a small shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			s, err = openShop(cfg, logger.NewTo(errOut, cfg.App.Env), confirm)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if s == nil || !(dumpMetrics || s.cfg.Metrics.Enabled) {
				return nil
			}
			return s.metrics.Dump(cmd.OutOrStdout())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "inventory.yaml", "config file")
	root.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "print metrics after the command")
	root.PersistentFlags().BoolVarP(&confirm.yes, "yes", "y", false, "answer yes to every confirmation")

	current := func() *shop { return s }
	root.AddCommand(
		newItemsCmd(current),
		newProductsCmd(current),
		newSearchCmd(current),
		newPriceCmd(),
		newReportCmd(current),
	)
	return root
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
