package handler

import (
	"fmt"

	"github.com/rl1809/shop-sim/internal/core/domain"
)

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) printProducts(products []domain.Product) {
	c.printf("%10s%20s%10s\n", "Product ID", "Name", "Price")
	for _, p := range products {
		c.printf("%10s%20s%10s\n", p.ID, p.Name, p.Price.String())
	}
}

func (c *Console) printCart(lines []domain.CartLine) {
	c.printf("%10s%20s%10s%10s\n", "ID", "Name", "Price", "Qty")
	for _, l := range lines {
		c.printf("%10s%20s%10s%10d\n", l.Product.ID, l.Product.Name, l.Product.Price.String(), l.Quantity)
	}
}

func (c *Console) printOrders(orders []domain.Order) {
	if len(orders) == 0 {
		c.printf("No orders have been made yet.\n")
		return
	}

	for _, o := range orders {
		c.printf("\nOrder ID: %d\n", o.ID)
		c.printf("Total Amount: %s\n", o.TotalAmount.String())
		c.printf("Payment Method: %s\n", o.PaymentMethod)
		c.printf("Order Details:\n")
		c.printf("%15s%20s%10s%10s\n", "Product ID", "Name", "Price", "Quantity")
		for _, l := range o.Lines {
			c.printf("%15s%20s%10s%10d\n", l.Product.ID, l.Product.Name, l.Product.Price.String(), l.Quantity)
		}
	}
}
