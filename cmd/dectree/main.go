// Command dectree demonstrates the library on two sample trees: a
// loan-approval decision chain and a risk-assessment multi-branch. The
// trees, thresholds, and contexts here are illustrative fixtures, not
// part of the reusable core.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/capybara-brain346/decision-tree-engine/internal/diagram"
	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/action"
	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/predicate"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

func main() {
	logger := slog.New(logging.NewCorrelationHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if err := run(context.Background(), logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	if err := loanApprovalExample(ctx, logger); err != nil {
		return err
	}
	return riskAssessmentExample(ctx, logger)
}

// loanApprovalExample builds a chain of binary decisions with Go-closure
// predicates: amount cap, income floor, then credit score.
func loanApprovalExample(ctx context.Context, logger *slog.Logger) error {
	fmt.Println("=== Loan Approval Decision Tree ===")

	approved := dectree.NewOutcome("APPROVED",
		action.Log(logger, "loan approved", "amount"))
	deniedIncome := dectree.NewOutcome("DENIED - Insufficient Income", nil)
	deniedCredit := dectree.NewOutcome("DENIED - Low Credit Score", nil)
	manualReview := dectree.NewOutcome("MANUAL REVIEW REQUIRED", nil)

	creditCheck := dectree.NewDecision("Credit Score Check",
		func(ctx context.Context, c schema.Context) (bool, error) {
			return schema.GetNumber(c, "credit_score", 0) >= 650, nil
		},
		approved, deniedCredit)

	incomeCheck := dectree.NewDecision("Income Check",
		func(ctx context.Context, c schema.Context) (bool, error) {
			return schema.GetNumber(c, "income", 0) >= 50000, nil
		},
		creditCheck, deniedIncome)

	amountCheck := dectree.NewDecision("Loan Amount Check",
		func(ctx context.Context, c schema.Context) (bool, error) {
			return schema.GetNumber(c, "amount", 0) <= 100000, nil
		},
		incomeCheck, manualReview)

	engine := dectree.NewEngine(amountCheck, dectree.WithLogger(logger))

	if err := printTree("Loan Approval", amountCheck); err != nil {
		return err
	}

	cases := []schema.Context{
		{"amount": 50000, "income": 75000, "credit_score": 700},
		{"amount": 50000, "income": 40000, "credit_score": 700},
		{"amount": 50000, "income": 75000, "credit_score": 600},
		{"amount": 150000, "income": 75000, "credit_score": 700},
	}

	fmt.Println("\n=== Test Results ===")
	for i, c := range cases {
		result, err := engine.Evaluate(ctx, c, true)
		if err != nil {
			return err
		}
		fmt.Printf("Case %d: amount=%v income=%v credit=%v -> %s\n",
			i+1, c["amount"], c["income"], c["credit_score"], result)
		printTrace(engine.Trace())
	}
	return nil
}

// riskAssessmentExample builds a multi-branch tree with expr-lang
// predicates, first match wins.
func riskAssessmentExample(ctx context.Context, logger *slog.Logger) error {
	fmt.Println("\n=== Risk Assessment (Multi-Branch) ===")

	exprs := predicate.NewExprEngine()

	risk := dectree.NewMultiBranch("Risk Level").
		AddBranch(exprs.Predicate("credit_score >= 750 and debt_ratio < 0.3"),
			dectree.NewOutcome("LOW RISK", nil)).
		AddBranch(exprs.Predicate("credit_score >= 650 and debt_ratio < 0.5"),
			dectree.NewOutcome("MEDIUM RISK", nil)).
		AddBranch(exprs.Predicate("credit_score >= 550"),
			dectree.NewOutcome("HIGH RISK", nil)).
		SetDefault(dectree.NewOutcome("CRITICAL RISK", nil))

	engine := dectree.NewEngine(risk, dectree.WithLogger(logger))

	if err := printTree("Risk Assessment", risk); err != nil {
		return err
	}

	cases := []schema.Context{
		{"credit_score": 780, "debt_ratio": 0.25},
		{"credit_score": 680, "debt_ratio": 0.4},
		{"credit_score": 600, "debt_ratio": 0.6},
		{"credit_score": 500, "debt_ratio": 0.8},
	}

	fmt.Println("\n=== Test Results ===")
	for _, c := range cases {
		result, err := engine.Evaluate(ctx, c, true)
		if err != nil {
			return err
		}
		fmt.Printf("Case: credit=%v debt_ratio=%v -> %s\n",
			c["credit_score"], c["debt_ratio"], result)
		printTrace(engine.Trace())
	}
	return nil
}

func printTree(title string, root dectree.Node) error {
	doc, err := diagram.RenderJSON(root)
	if err != nil {
		return err
	}
	fmt.Println("\n=== Tree Structure (JSON) ===")
	fmt.Println(doc)

	fmt.Println("=== Tree Structure (Mermaid) ===")
	fmt.Println(diagram.RenderMermaid(diagram.Build(title, root)))
	return nil
}

func printTrace(trace []schema.TraceEntry) {
	for _, entry := range trace {
		switch entry.Kind {
		case schema.KindOutcome:
			fmt.Printf("  trace: outcome %v\n", entry.Outcome)
		default:
			fmt.Printf("  trace: %s -> %s\n", entry.Node, entry.Branch)
		}
	}
}
