package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"theme-sync/core/config"
	"theme-sync/core/ion"
	"theme-sync/core/plm"
	"theme-sync/core/reconcile"
	"theme-sync/core/token"

	"go.uber.org/zap"
)

// Prints what reconciliation would do to one style without writing anything.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: debug_style <styleId>")
	}
	styleID, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	httpClient := ion.NewHTTPClient(cfg.ION)
	tokens := token.NewCache(cfg.Auth, httpClient, zap.NewNop())
	client := plm.NewClient(ion.NewClient(cfg.ION, httpClient, tokens, zap.NewNop()), cfg.PLM, zap.NewNop())
	ctx := context.Background()

	fmt.Println("=== Style ===")
	style, colorways, err := client.FetchStyleWithColorways(ctx, styleID)
	if err != nil {
		log.Fatal(err)
	}
	if style == nil {
		fmt.Printf("Style %d NOT FOUND\n", styleID)
		return
	}
	fmt.Printf("Style %d: status=%d theme=%s\n", style.StyleID, style.Status, ref(style.ThemeID))

	fmt.Println("\n=== Colorways ===")
	for _, cw := range colorways {
		fmt.Printf("Colorway %d: status=%d theme=%s active=%v\n", cw.ID, cw.Status, ref(cw.ThemeID), cw.IsActive())
	}

	fmt.Println("\n=== Decision ===")
	decision := reconcile.Reconcile(*style, colorways)
	fmt.Printf("StatusUpdate=%s ThemeIDUpdate=%s changed=%v\n",
		ref(decision.StatusUpdate), ref(decision.ThemeIDUpdate), decision.Changed())

	output := map[string]any{
		"style":     style,
		"colorways": colorways,
		"groups":    plm.GroupByStyle(colorways),
		"decision":  decision,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile("debug_style.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_style.json for details.")
}

func ref(v *int) string {
	if v == nil {
		return "null"
	}
	return strconv.Itoa(*v)
}
