package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"flash_sale_back_end/internal/config"
	"flash_sale_back_end/internal/storefront"
	"flash_sale_back_end/internal/utils"
)

const usage = `Usage: storefront [flags] <command>

Commands:
  products                     liste le catalogue
  buy <id>[:qty] [<id>[:qty]]  ajoute au panier puis passe la commande

Flags:
`

func main() {
	config.Load()

	apiURL := flag.String("api", envOr("API_URL", storefront.DefaultAPIURL), "URL de l'API")
	email := flag.String("email", storefront.DefaultCustomerEmail, "email du client")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := storefront.NewSession(storefront.NewClient(*apiURL, nil), *email)
	if err := session.LoadProducts(ctx); err != nil {
		log.Fatal("❌ ", session.Error)
	}

	switch flag.Arg(0) {
	case "products":
		printProducts(session)
	case "buy":
		if err := buy(ctx, session, flag.Args()[1:]); err != nil {
			log.Fatal("❌ ", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func printProducts(s *storefront.Session) {
	for _, p := range s.Products {
		fmt.Printf("%-16s %-24s $%9s  (was $%s, -%d%%)  stock %d\n",
			p.ID, p.Name, utils.FormatMoney(p.Price), utils.FormatMoney(p.OriginalPrice), p.Discount, p.Stock)
	}
}

func buy(ctx context.Context, s *storefront.Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("aucun produit demandé")
	}

	for _, arg := range args {
		id, qty, err := parseCartArg(arg)
		if err != nil {
			return err
		}
		for i := 0; i < qty; i++ {
			if !s.AddToCart(id) {
				return fmt.Errorf("produit inconnu: %s", id)
			}
		}
	}

	sum := s.Cart.Summary()
	for _, item := range s.Cart.Items() {
		fmt.Printf("  %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Printf("Subtotal $%s  Tax $%s  Total $%s\n",
		utils.FormatMoney(sum.Subtotal), utils.FormatMoney(sum.Tax), utils.FormatMoney(sum.Total))

	orderID, ok := s.Checkout(ctx)
	if !ok {
		return fmt.Errorf("%s", s.Error)
	}
	fmt.Println("✅ Order confirmed:", orderID)
	return nil
}

// parseCartArg lit "id" ou "id:qty"
func parseCartArg(arg string) (string, int, error) {
	id, rawQty, found := strings.Cut(arg, ":")
	if !found {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(rawQty)
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("quantité invalide dans %q", arg)
	}
	return id, qty, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
