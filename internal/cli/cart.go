package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dkenzhe/lavka/internal/catalog"
	"github.com/dkenzhe/lavka/internal/common"
)

// Menu lists what the kitchen sells.
func (a *App) Menu(ctx context.Context) error {
	for _, p := range catalog.Items() {
		printlnFn(fmt.Sprintf("%-12s %10s  %s", p.Name, formatPrice(p.Price), p.Description))
	}
	return nil
}

// AddToCart prompts for a product name and puts it in the cart, merging with
// an existing line for the same product.
func (a *App) AddToCart(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}

	product, ok := catalog.Find(name)
	if !ok {
		printlnFn("No such item on the menu:", name)
		return common.ErrNotFound
	}

	if err := a.cart.AddItem(ctx, product); err != nil {
		return err
	}

	totals, err := a.cart.Totals(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Added %s to cart (%d items)", product.Name, totals.Units))
	return nil
}

// ShowCart renders the cart screen with per-line subtotals and the order
// summary.
func (a *App) ShowCart(ctx context.Context) error {
	items, err := a.cart.Items(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("#%d %s x%d %s (%s each)",
			item.ID, item.Name, item.Quantity,
			formatPrice(item.Price*int64(item.Quantity)), formatPrice(item.Price)))
	}

	totals, err := a.cart.Totals(ctx)
	if err != nil {
		return err
	}
	printlnFn("Items:", totals.Lines)
	printlnFn("Total:", formatPrice(totals.Subtotal))
	return nil
}

// ChangeQuantity prompts for a line id and a signed delta, e.g. -1.
func (a *App) ChangeQuantity(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		printlnFn("Not a number:", idText)
		return err
	}

	deltaText, err := getSimpleText(a.reader, "Change (+1, -1, ...)", os.Stdout)
	if err != nil {
		return err
	}
	delta, err := strconv.Atoi(deltaText)
	if err != nil {
		printlnFn("Not a number:", deltaText)
		return err
	}

	return a.cart.ChangeQuantity(ctx, id, delta)
}

// RemoveFromCart prompts for a line id and removes that line.
func (a *App) RemoveFromCart(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		printlnFn("Not a number:", idText)
		return err
	}
	return a.cart.RemoveItem(ctx, id)
}

// ClearCart empties the cart after confirmation.
func (a *App) ClearCart(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Are you sure you want to clear your cart?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := a.cart.Clear(ctx); err != nil {
		return err
	}
	printlnFn("Cart cleared successfully!")
	return nil
}

// Checkout places the simulated order. The store decides whether the cart
// and the session allow it; this screen only renders the outcome.
func (a *App) Checkout(ctx context.Context) error {
	printlnFn("Processing...")

	var checkoutErr error
	task := a.sched.Schedule(ctx, func() {
		checkoutErr = a.cart.Checkout(ctx)
	})
	if !task.Wait() {
		printlnFn("Checkout cancelled")
		return ctx.Err()
	}

	switch {
	case errors.Is(checkoutErr, common.ErrEmptyCart):
		printlnFn("Your cart is empty!")
	case errors.Is(checkoutErr, common.ErrNotAuthenticated):
		printlnFn("Please login to your account first")
	case checkoutErr != nil:
		printlnFn("Checkout failed:", checkoutErr.Error())
	default:
		printlnFn("Order successfully placed! Thank you for your order!")
	}
	return checkoutErr
}
