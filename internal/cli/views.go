package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/message"

	"financas/internal/core"
)

type accountView struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

func newAccountView(a core.Account) accountView {
	return accountView{ID: a.ID, Name: a.Name, Email: a.Email}
}

func (v accountView) writeText(w io.Writer, _ *message.Printer) error {
	_, err := fmt.Fprintf(w, "Bem-vindo(a), %s (conta %d)\n", v.Name, v.ID)
	return err
}

type accountList []accountView

func (l accountList) writeText(w io.Writer, _ *message.Printer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma conta cadastrada.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tEMAIL")
	for _, a := range l {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", a.ID, a.Name, a.Email)
	}
	return tw.Flush()
}

// resultView reports the outcome of a write.
type resultView struct {
	Action  string `json:"action" yaml:"action"`
	ID      int64  `json:"id" yaml:"id"`
	Message string `json:"message" yaml:"message"`
}

func (v resultView) writeText(w io.Writer, _ *message.Printer) error {
	_, err := fmt.Fprintln(w, v.Message)
	return err
}

type recordView struct {
	ID       int64      `json:"id" yaml:"id"`
	Date     string     `json:"date" yaml:"date"`
	Kind     string     `json:"kind" yaml:"kind"`
	Category string     `json:"category" yaml:"category"`
	Label    string     `json:"label" yaml:"label"`
	Amount   core.Money `json:"amount" yaml:"amount"`
}

func newRecordView(r core.Record) recordView {
	return recordView{
		ID:       r.ID,
		Date:     r.EntryDate,
		Kind:     string(r.Kind()),
		Category: r.Category,
		Label:    r.Label,
		Amount:   r.Amount,
	}
}

type recordList []recordView

func (l recordList) writeText(w io.Writer, p *message.Printer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum registro.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATA\tTIPO\tCATEGORIA\tDESCRIÇÃO\tVALOR")
	for _, r := range l {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Date, kindLabel(r.Kind), r.Category, r.Label, formatMoney(p, r.Amount))
	}
	return tw.Flush()
}

type goalView struct {
	ID       int64      `json:"id" yaml:"id"`
	Category string     `json:"category" yaml:"category"`
	Target   core.Money `json:"target" yaml:"target"`
}

type goalList []goalView

func (l goalList) writeText(w io.Writer, p *message.Printer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "Nenhuma meta definida.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCATEGORIA\tMETA")
	for _, g := range l {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", g.ID, g.Category, formatMoney(p, g.Target))
	}
	return tw.Flush()
}

type dashboardView core.Summary

func (v dashboardView) writeText(w io.Writer, p *message.Printer) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Saldo:\t%s\n", formatMoney(p, v.Balance))
	fmt.Fprintf(tw, "Receitas:\t%s\n", formatMoney(p, v.TotalIncome))
	fmt.Fprintf(tw, "Despesas:\t%s\n", formatMoney(p, v.TotalExpense))
	fmt.Fprintf(tw, "Registros:\t%d\n", v.Count)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(v.ByCategory) > 0 {
		fmt.Fprintln(w)
		tw = newTable(w)
		fmt.Fprintln(tw, "CATEGORIA\tGASTO\tMETA\tSITUAÇÃO")
		for _, c := range v.ByCategory {
			goal, status := "-", "sem meta"
			if c.HasGoal {
				goal = formatMoney(p, c.Goal)
				status = "dentro da meta"
				if c.OverGoal {
					status = "acima da meta"
				}
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Category, formatMoney(p, c.Spent), goal, status)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(v.Monthly.Labels) > 0 {
		fmt.Fprintln(w)
		tw = newTable(w)
		fmt.Fprintln(tw, "MÊS\tRECEITAS\tDESPESAS")
		for i, label := range v.Monthly.Labels {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", label,
				formatMoney(p, v.Monthly.Income[i]), formatMoney(p, v.Monthly.Expense[i]))
		}
		return tw.Flush()
	}
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func kindLabel(kind string) string {
	if core.EntryKind(kind) == core.Expense {
		return "despesa"
	}
	return "receita"
}
