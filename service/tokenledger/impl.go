package tokenledger

import (
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

type impl struct {
	cfg        Config
	mu         sync.Mutex
	balances   map[domain.Address]domain.Amount
	allowances map[domain.Address]map[domain.Address]domain.Amount
}

// New returns an in-process ledger.
func New(cfg Config) Ledger {
	cfg.Address = cfg.Address.ToLower()
	return &impl{
		cfg:        cfg,
		balances:   map[domain.Address]domain.Amount{},
		allowances: map[domain.Address]map[domain.Address]domain.Amount{},
	}
}

func (im *impl) Address() domain.Address {
	return im.cfg.Address
}

func (im *impl) Symbol() string {
	return im.cfg.Symbol
}

func (im *impl) Decimals() int32 {
	return im.cfg.Decimals
}

func (im *impl) Mint(c ctx.Ctx, to domain.Address, amount domain.Amount) error {
	if to.IsZero() {
		return domain.ErrZeroAddress
	}
	if amount.Sign() <= 0 {
		return domain.ErrBadParamInput
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	to = to.ToLower()
	im.balances[to] = im.balances[to].Add(amount)
	c.WithFields(log.Fields{"to": to, "amount": amount.String()}).Info("token minted")
	return nil
}

func (im *impl) Approve(c ctx.Ctx, owner, spender domain.Address, amount domain.Amount) error {
	if owner.IsZero() || spender.IsZero() {
		return domain.ErrZeroAddress
	}
	if amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	owner, spender = owner.ToLower(), spender.ToLower()
	if im.allowances[owner] == nil {
		im.allowances[owner] = map[domain.Address]domain.Amount{}
	}
	im.allowances[owner][spender] = amount
	return nil
}

func (im *impl) BalanceOf(c ctx.Ctx, account domain.Address) domain.Amount {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.balances[account.ToLower()]
}

func (im *impl) Allowance(c ctx.Ctx, owner, spender domain.Address) domain.Amount {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.allowances[owner.ToLower()][spender.ToLower()]
}

func (im *impl) Client(account domain.Address) auction.TokenLedger {
	return &client{ledger: im, account: account.ToLower()}
}

// move must be called with mu held.
func (im *impl) move(from, to domain.Address, amount domain.Amount) error {
	if amount.Sign() < 0 {
		return domain.ErrBadParamInput
	}
	if to.IsZero() {
		return domain.ErrZeroAddress
	}
	if im.balances[from].Cmp(amount) < 0 {
		return xerrors.Errorf("%s has %s, needs %s: %w", from, im.balances[from], amount, domain.ErrInsufficientBalance)
	}
	im.balances[from] = im.balances[from].Sub(amount)
	im.balances[to] = im.balances[to].Add(amount)
	return nil
}

type client struct {
	ledger  *impl
	account domain.Address
}

func (cl *client) TransferFrom(c ctx.Ctx, payer, payee domain.Address, amount domain.Amount) error {
	im := cl.ledger
	im.mu.Lock()
	defer im.mu.Unlock()

	payer, payee = payer.ToLower(), payee.ToLower()
	allowed := im.allowances[payer][cl.account]
	if allowed.Cmp(amount) < 0 {
		return xerrors.Errorf("%s allows %s %s, needs %s: %w", payer, cl.account, allowed, amount, domain.ErrInsufficientAllowed)
	}
	if err := im.move(payer, payee, amount); err != nil {
		return err
	}
	im.allowances[payer][cl.account] = allowed.Sub(amount)
	return nil
}

func (cl *client) Transfer(c ctx.Ctx, payee domain.Address, amount domain.Amount) error {
	im := cl.ledger
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.move(cl.account, payee.ToLower(), amount)
}

func (cl *client) Revert(c ctx.Ctx, from, to domain.Address, amount domain.Amount) error {
	im := cl.ledger
	im.mu.Lock()
	defer im.mu.Unlock()
	if err := im.move(from.ToLower(), to.ToLower(), amount); err != nil {
		c.WithFields(log.Fields{
			"from":   from,
			"to":     to,
			"amount": amount.String(),
			"err":    err,
		}).Error("revert failed")
		return err
	}
	return nil
}

// RevertFrom undoes TransferFrom(payer, payee, amount), giving back the
// allowance it used up.
func (cl *client) RevertFrom(c ctx.Ctx, payer, payee domain.Address, amount domain.Amount) error {
	im := cl.ledger
	im.mu.Lock()
	defer im.mu.Unlock()

	payer, payee = payer.ToLower(), payee.ToLower()
	if err := im.move(payee, payer, amount); err != nil {
		c.WithFields(log.Fields{
			"payer":  payer,
			"payee":  payee,
			"amount": amount.String(),
			"err":    err,
		}).Error("revert debit failed")
		return err
	}
	if im.allowances[payer] == nil {
		im.allowances[payer] = map[domain.Address]domain.Amount{}
	}
	im.allowances[payer][cl.account] = im.allowances[payer][cl.account].Add(amount)
	return nil
}
