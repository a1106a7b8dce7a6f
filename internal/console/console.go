// Package console is a line-oriented text front end over a game session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gravitas-games/homestead/internal/game"
	"github.com/gravitas-games/homestead/internal/save"
	"github.com/gravitas-games/homestead/pkg/inventory"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("console: quit")

const helpText = `commands:
  shops                 list shops
  open <shop>           open a shop
  close                 close the shop
  stock                 show the open shop's stock
  buy <item> <qty>      buy from the open shop
  sell <slot> <qty>     sell from an inventory slot
  inv                   show inventory
  coins                 show balance
  swap <a> <b>          swap two slots
  save | load           persist or restore the game
  quit`

// Console executes commands against one session.
type Console struct {
	world   *game.World
	session *game.Session
	out     io.Writer
}

// New creates a console writing to out.
func New(world *game.World, session *game.Session, out io.Writer) *Console {
	return &Console{world: world, session: session, out: out}
}

// Run reads commands from in until EOF, quit or ctx is done. On
// cancellation Run returns at once, but its reader goroutine stays blocked in
// Scan until in yields or is closed; callers owning in should close it.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		scanErr <- sc.Err()
	}()

	c.printf("> ")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			err := c.Exec(ctx, line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if err != nil {
				c.printf("error: %v\n", err)
			}
			c.printf("> ")
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		c.printf("%s\n", helpText)
	case "quit", "exit":
		return ErrQuit
	case "shops":
		for _, name := range c.world.ShopNames() {
			c.printf("%s\n", name)
		}
	case "open":
		if len(args) != 1 {
			return errors.New("usage: open <shop>")
		}
		if err := c.session.OpenShop(args[0]); err != nil {
			return err
		}
		c.printf("welcome to %s\n", args[0])
		c.printStock()
	case "close":
		c.session.CloseShop()
		c.printf("shop closed\n")
	case "stock":
		c.printStock()
	case "buy":
		if len(args) != 2 {
			return errors.New("usage: buy <item> <qty>")
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[1])
		}
		r := c.session.Buy(inventory.ItemID(args[0]), qty)
		if !r.OK() {
			return r.Err()
		}
		c.printf("bought %d %s, %d coins left\n", qty, args[0], c.session.Coins())
	case "sell":
		ints, err := parseInts(args, 2, "usage: sell <slot> <qty>")
		if err != nil {
			return err
		}
		r := c.session.Sell(ints[0], ints[1])
		if !r.OK() {
			return r.Err()
		}
		c.printf("sold, %d coins now\n", c.session.Coins())
	case "swap":
		ints, err := parseInts(args, 2, "usage: swap <a> <b>")
		if err != nil {
			return err
		}
		return c.session.Swap(ints[0], ints[1])
	case "inv":
		c.printInventory()
	case "coins":
		c.printf("%d coins\n", c.session.Coins())
	case "save":
		if err := c.session.Save(ctx); err != nil {
			return err
		}
		c.printf("saved\n")
	case "load":
		rep, err := c.session.Load(ctx)
		if errors.Is(err, save.ErrNoSave) {
			c.printf("no save yet\n")
			return nil
		}
		if err != nil {
			return err
		}
		c.printf("loaded %d slots\n", rep.Restored)
		for _, id := range rep.Missing {
			c.printf("  %s no longer exists, slot cleared\n", id)
		}
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (c *Console) printInventory() {
	v := c.session.Snapshot()
	c.printf("%s: %d coins\n", v.Player, v.Coins)
	for _, s := range v.Slots {
		if s.ItemID == "" {
			c.printf("  [%d] -\n", s.Index)
			continue
		}
		c.printf("  [%d] %s x%d\n", s.Index, label(s.Name, s.ItemID), s.Quantity)
	}
}

func (c *Console) printStock() {
	v := c.session.Snapshot()
	if v.Shop == "" {
		c.printf("no shop open\n")
		return
	}
	for _, e := range v.Stock {
		stock := "inf"
		if !e.Infinite {
			stock = strconv.Itoa(e.Stock)
		}
		c.printf("  %-14s buy %4d  sell %4d  stock %s\n", e.ItemID, e.BuyPrice, e.SellPrice, stock)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func parseInts(args []string, n int, usage string) ([]int, error) {
	if len(args) != n {
		return nil, errors.New(usage)
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.New(usage)
		}
		out[i] = v
	}
	return out, nil
}

func label(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
