package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mytheresa/inventory-system/app/items"
	"github.com/mytheresa/inventory-system/app/products"
	"github.com/mytheresa/inventory-system/app/report"
	"github.com/mytheresa/inventory-system/app/validation"
	"github.com/mytheresa/inventory-system/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newItemsCmd(current func() *shop) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List and edit items",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List items in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printItems(cmd.OutOrStdout(), *current().catalog.AllItems())
		},
	}

	var form items.Form
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Example: `  inventory items add --name nut --price 0.10 --stock 380 --min 100 --max 500 --supplier "Metal Machining Co."
  inventory items add --name sprocket --price 6.46 --stock 80 --min 60 --max 300 --machine-id 365`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			d := items.NewDraft()
			d.Form = form
			d.Form.Kind = models.SourceSourced
			if cmd.Flags().Changed("machine-id") {
				d.Form.Kind = models.SourceManufactured
			}
			item, err := s.items.Save(d)
			if err != nil {
				return describe(err)
			}
			s.catalogChanged()
			fmt.Fprintf(cmd.OutOrStdout(), "added item %d\n", item.ID)
			return printItems(cmd.OutOrStdout(), *s.catalog.AllItems())
		},
	}
	add.Flags().StringVar(&form.Name, "name", "", "item name")
	add.Flags().StringVar(&form.Price, "price", "", "price, e.g. 12.34 or $1,234.56")
	add.Flags().StringVar(&form.Stock, "stock", "", "units in stock")
	add.Flags().StringVar(&form.Min, "min", "", "minimum stock")
	add.Flags().StringVar(&form.Max, "max", "", "maximum stock")
	add.Flags().StringVar(&form.MachineID, "machine-id", "", "machine id of a manufactured item")
	add.Flags().StringVar(&form.SupplierName, "supplier", "", "supplier of a sourced item")
	add.MarkFlagsMutuallyExclusive("machine-id", "supplier")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("item id %q: %w", args[0], err)
			}
			item, err := s.catalog.ItemByID(id)
			if err != nil {
				return err
			}
			if err := s.items.Delete(item); err != nil {
				return err
			}
			s.catalogChanged()
			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func newProductsCmd(current func() *shop) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List and edit products",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printProducts(cmd.OutOrStdout(), *current().catalog.AllProducts())
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a product and its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id %q: %w", args[0], err)
			}
			p, err := current().catalog.ProductByID(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := printProducts(out, models.ProductList{p}); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nparts (cost %s):\n", money(p.ComponentsCost()))
			return printItems(out, p.Components)
		},
	}

	var (
		form  products.Form
		parts []int
	)
	add := &cobra.Command{
		Use:     "add",
		Short:   "Add a product built from existing items",
		Example: `  inventory products add --name "seat, road" --price 22 --stock 20 --min 10 --max 30 --parts 20,26`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			d := products.NewDraft()
			d.Form = form
			for _, id := range parts {
				item, err := s.catalog.ItemByID(id)
				if err != nil {
					return fmt.Errorf("part %d: %w", id, err)
				}
				if err := d.Associate(item); err != nil {
					return err
				}
			}
			p, err := s.products.Save(d)
			if err != nil {
				return describe(err)
			}
			s.catalogChanged()
			fmt.Fprintf(cmd.OutOrStdout(), "added product %d\n", p.ID)
			return printProducts(cmd.OutOrStdout(), *s.catalog.AllProducts())
		},
	}
	add.Flags().StringVar(&form.Name, "name", "", "product name")
	add.Flags().StringVar(&form.Price, "price", "", "price, e.g. 12.34 or $1,234.56")
	add.Flags().StringVar(&form.Stock, "stock", "", "units in stock")
	add.Flags().StringVar(&form.Min, "min", "", "minimum stock")
	add.Flags().StringVar(&form.Max, "max", "", "maximum stock")
	add.Flags().IntSliceVar(&parts, "parts", nil, "item ids of the parts; repeat an id for multiple units")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id %q: %w", args[0], err)
			}
			p, err := s.catalog.ProductByID(id)
			if err != nil {
				return err
			}
			if err := s.products.Delete(p); err != nil {
				return err
			}
			s.catalogChanged()
			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, add, del)
	return cmd
}

func newSearchCmd(current func() *shop) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find one record by id, inventory, price or name",
		Long: `Search sorts the list by the queried field and returns at most one record.

Query forms:
  12, id:12        id
  inv:30           inventory
  12.99, $1,234.5  price
  name:wheel, hub  name (substring)`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "items <query>",
			Short: "Search items",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s := current()
				res, err := s.search.Items(s.catalog.AllItems(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !res.Found {
					fmt.Fprintln(cmd.OutOrStdout(), notFound("Item", res.Query.Token))
					return nil
				}
				return printItems(cmd.OutOrStdout(), []*models.Item{res.Match})
			},
		},
		&cobra.Command{
			Use:   "products <query>",
			Short: "Search products",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s := current()
				res, err := s.search.Products(s.catalog.AllProducts(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !res.Found {
					fmt.Fprintln(cmd.OutOrStdout(), notFound("Product", res.Query.Token))
					return nil
				}
				return printProducts(cmd.OutOrStdout(), models.ProductList{res.Match})
			},
		},
	)
	return cmd
}

func newPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price <text>",
		Short: "Show how price text is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), validation.ParseCurrency(args[0]).StringFixed(2))
			return nil
		},
	}
}

func newReportCmd(current func() *shop) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file.xlsx>",
		Short: "Write a stock report workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := current()
			var buf bytes.Buffer
			sheets := report.Sheets{Items: s.cfg.Report.ItemsSheet, Products: s.cfg.Report.ProductsSheet}
			if err := report.Write(&buf, *s.catalog.AllItems(), *s.catalog.AllProducts(), sheets); err != nil {
				return err
			}
			if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			s.log.Info("report written", "path", args[0], "items", s.catalog.AllItems().Len(), "products", s.catalog.AllProducts().Len())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

// describe turns a save rejection into the text of its dialog.
func describe(err error) error {
	if rej, ok := validation.AsRejection(err); ok {
		return fmt.Errorf("%s %s", rej.Title, rej.Detail)
	}
	return err
}

// notFound is the text shown for a search miss. token is the cleaned query.
func notFound(kind, token string) string {
	return fmt.Sprintf("%s not found.\nA search for %q yielded no results.", kind, token)
}

func printItems(w io.Writer, list []*models.Item) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tINV\tMIN\tMAX\tSOURCE")
	for _, it := range list {
		source := ""
		if id, ok := it.MachineID(); ok {
			source = fmt.Sprintf("machine %d", id)
		} else if name, ok := it.SupplierName(); ok {
			source = name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n", it.ID, it.Name, money(it.Price), it.Stock, it.Min, it.Max, source)
	}
	return tw.Flush()
}

func printProducts(w io.Writer, list models.ProductList) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tINV\tMIN\tMAX\tPARTS")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n", p.ID, p.Name, money(p.Price), p.Stock, p.Min, p.Max, len(p.Components))
	}
	return tw.Flush()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
