package service

import (
	"log"

	"github.com/xilang-pos/api/internal/order"
)

// LogPrinter writes kitchen tickets to the server log. It stands in for the
// real receipt printer until the hardware integration lands.
type LogPrinter struct{}

// PrintTicket implements Printer.
func (LogPrinter) PrintTicket(o order.Order) error {
	log.Printf("TICKET %s table=%s guests=%d total=%s",
		o.BillNumber, o.TableNumber, o.CustomerCount, o.Total.StringFixed(2))
	for _, line := range o.Lines {
		if line.Label != "" {
			log.Printf("TICKET %s   %dx %s (%s)", o.BillNumber, line.Quantity, line.Name, line.Label)
			continue
		}
		log.Printf("TICKET %s   %dx %s", o.BillNumber, line.Quantity, line.Name)
	}
	return nil
}
