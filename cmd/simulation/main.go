// Command simulation drives a full return journey against the in-memory
// stack: a client walks the four-step wizard, the operator validates the
// request, carrier events move it through the network, and the dashboard
// KPIs are printed at the end. Useful for demos and manual smoke checks
// without a running HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/service"
	"github.com/retours-express/returns-platform/internal/core/wizard"
	"github.com/retours-express/returns-platform/internal/infrastructure/db/memory"
	"github.com/retours-express/returns-platform/internal/infrastructure/fixtures"
	"github.com/retours-express/returns-platform/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: "warn", Pretty: true})
	ctx := context.Background()

	returnRepo := memory.NewReturnRepository()
	userRepo := memory.NewUserRepository()
	catalog := memory.NewCatalogRepository(fixtures.Products(), fixtures.Orders())
	if err := fixtures.Seed(ctx, userRepo, returnRepo); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}

	svc := service.NewReturnService(returnRepo, catalog, log)
	const client = "client@example.com"

	// --- Client side: the four-step wizard ---
	orders, err := catalog.ListOrdersByClient(ctx, client)
	if err != nil || len(orders) == 0 {
		fmt.Fprintln(os.Stderr, "no orders for", client)
		os.Exit(1)
	}

	w := wizard.New(svc, client)
	fmt.Printf("étape %d: %s\n", w.Step()+1, w.Step().Label())

	w.SelectOrder(orders[0])
	mustAdvance(ctx, w)

	w.ChooseReason(domain.ReasonDefective)
	w.SetDescription("Écran fissuré à la réception")

	// A defective return cannot pass the reason step without a proof photo.
	if _, err := w.Advance(ctx); err == nil {
		fmt.Fprintln(os.Stderr, "expected proof gate to block the reason step")
		os.Exit(1)
	} else {
		fmt.Println("blocage attendu:", err)
	}
	w.AttachProof("uploads/proof-ecran.jpg")
	mustAdvance(ctx, w)

	w.ChooseMode(domain.ModeHomePickup)
	mustAdvance(ctx, w)

	created, err := w.Advance(ctx) // review step submits
	if err != nil {
		fmt.Fprintln(os.Stderr, "submit:", err)
		os.Exit(1)
	}
	fmt.Printf("demande créée: %s (%s, %d%%)\n", created.ID, created.Status.Label(), created.Progress)

	// --- Operator side: validation then carrier progress ---
	now := time.Now().UTC()
	for i, status := range []domain.ReturnStatus{
		domain.StatusValidated,
		domain.StatusCollected,
		domain.StatusInTransit,
		domain.StatusReceived,
		domain.StatusProcessing,
		domain.StatusRefunded,
	} {
		updated, err := svc.TransitionStatus(ctx, created.ID, status, now.Add(time.Duration(i+1)*time.Hour))
		if err != nil {
			fmt.Fprintln(os.Stderr, "transition:", err)
			os.Exit(1)
		}
		fmt.Printf("  → %-12s %3d%%\n", updated.Status.Label(), updated.Progress)
	}

	if err := svc.RateReturn(ctx, created.ID, client, 5); err != nil {
		fmt.Fprintln(os.Stderr, "rate:", err)
		os.Exit(1)
	}

	// --- Dashboard ---
	stats, err := svc.DashboardStats(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stats:", err)
		os.Exit(1)
	}
	fmt.Println("\ntableau de bord:")
	fmt.Printf("  en attente:       %d\n", stats.Pending)
	fmt.Printf("  traitées:         %d\n", stats.Processed)
	fmt.Printf("  satisfaction moy: %.1f\n", stats.AverageSatisfaction)
	for reason, count := range stats.ReasonBreakdown {
		fmt.Printf("  motif %-18s %d\n", reason.Label()+":", count)
	}
}

func mustAdvance(ctx context.Context, w *wizard.Wizard) {
	if _, err := w.Advance(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "advance:", err)
		os.Exit(1)
	}
	fmt.Printf("étape %d: %s\n", w.Step()+1, w.Step().Label())
}
