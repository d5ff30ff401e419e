package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rl1809/shop-sim/internal/core/domain"
	"github.com/rl1809/shop-sim/internal/core/service"
)

var ErrInvalidInput = errors.New("invalid input")

// maxTokenLen caps how much of one token is kept. Longer tokens are read to
// the end but truncated, so they fail validation like any other bad token.
const maxTokenLen = 256

// Console drives the shop from whitespace-separated tokens on in and renders
// everything to out. Input ending (io.EOF) ends the session.
type Console struct {
	orderService *service.OrderService
	in           *bufio.Reader
	out          io.Writer
}

func NewConsole(orderService *service.OrderService, in io.Reader, out io.Writer) *Console {
	return &Console{
		orderService: orderService,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run shows the main menu until the user exits or input is closed.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n=== MENU ===\n")
		c.printf("1. View Products\n2. View Shopping Cart\n3. View Orders\n4. Exit\n")
		c.printf("Enter your choice: ")

		choice, err := c.next()
		if err != nil {
			return endOfSession(err)
		}

		switch choice {
		case "1":
			err = c.shop(ctx)
		case "2":
			err = c.cart(ctx)
		case "3":
			c.printOrders(c.orderService.Orders())
		case "4":
			return nil
		default:
			c.printf("Invalid option.\n")
		}

		if err != nil {
			return endOfSession(err)
		}
	}
}

func (c *Console) shop(ctx context.Context) error {
	c.printProducts(c.orderService.Catalog())

	for {
		c.printf("Enter Product ID to add to cart: ")
		id, err := c.next()
		if err != nil {
			return err
		}

		if _, err := c.orderService.AddToCart(ctx, id); err != nil {
			if errors.Is(err, service.ErrUnknownProduct) {
				c.printf("Invalid Product ID.\n")
				continue
			}
			return err
		}
		c.printf("Product added successfully!\n")

		more, err := c.askYesNo("Add another product? (YES/NO): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (c *Console) cart(ctx context.Context) error {
	if c.orderService.CartIsEmpty() {
		c.printf("Cart is empty.\n")
		return nil
	}

	c.printCart(c.orderService.Cart())

	confirm, err := c.askYesNo("Checkout all products? (YES/NO): ")
	if err != nil || !confirm {
		return err
	}

	c.printCart(c.orderService.Cart())
	c.printf("Total Amount: %s\n", c.orderService.CartTotal().String())

	_, err = c.orderService.Checkout(ctx, c)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		c.printf("Your cart is empty.\n")
		return nil
	case err != nil:
		return err
	}

	c.printf("You have successfully checked out the products!\n")
	return nil
}

// SelectPayment re-prompts until one of the listed payment options is chosen.
func (c *Console) SelectPayment(_ context.Context) (domain.PaymentMethod, error) {
	c.printf("Select Payment Method:\n")
	for _, opt := range domain.PaymentOptions() {
		c.printf("%s. %s\n", opt.Choice, opt.Label)
	}

	for {
		c.printf("Enter choice: ")
		choice, err := c.next()
		if err != nil {
			return nil, err
		}
		if method, ok := domain.PaymentMethodByChoice(choice); ok {
			return method, nil
		}
		c.printf("Invalid choice. Try again.\n")
	}
}

func (c *Console) askYesNo(prompt string) (bool, error) {
	for {
		c.printf("%s", prompt)
		token, err := c.next()
		if err != nil {
			return false, err
		}

		yes, err := ParseYesNo(token)
		if err == nil {
			return yes, nil
		}
		c.printf("Invalid input. Only YES or NO allowed.\n")
	}
}

// ParseYesNo accepts "yes" or "no" in any letter case.
func ParseYesNo(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected YES or NO, got %q", ErrInvalidInput, token)
	}
}

// next returns the next whitespace-separated token, or io.EOF once input is
// exhausted.
func (c *Console) next() (string, error) {
	var token strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if errors.Is(err, io.EOF) && token.Len() > 0 {
			return token.String(), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		if unicode.IsSpace(r) {
			if token.Len() > 0 {
				return token.String(), nil
			}
			continue
		}
		if token.Len() < maxTokenLen {
			token.WriteRune(r)
		}
	}
}

func endOfSession(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
