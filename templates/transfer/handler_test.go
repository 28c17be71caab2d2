package transfer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/ledger"
	"github.com/forwardblock/go-forwardblock/registry"
	"github.com/forwardblock/go-forwardblock/transaction"
)

var errInsufficient = errors.New("insufficient balance")

type balanceKey struct {
	account types.Address
	asset   types.AssetID
}

type balances map[balanceKey]uint64

func (b balances) ApplyEntry(_ uint64, e ledger.Entry) error {
	key := balanceKey{e.Account, e.Asset}
	switch e.Flag {
	case Credit:
		b[key] += e.Amount
	case Debit, Fee:
		if b[key] < e.Amount {
			return errInsufficient
		}
		b[key] -= e.Amount
	}
	return nil
}

func (b balances) RevertEntry(_ uint64, e ledger.Entry) error {
	key := balanceKey{e.Account, e.Asset}
	switch e.Flag {
	case Credit:
		b[key] -= e.Amount
	case Debit, Fee:
		b[key] += e.Amount
	}
	return nil
}

var (
	alice = types.Address{0xa1}
	bob   = types.Address{0xb0}
)

func testConfig() *config.Config {
	conf := config.DefaultConfig()
	return &conf
}

func sampleTx() *transaction.Transaction {
	sender, recipient := alice, bob
	return &transaction.Transaction{
		Version:   1,
		Flag:      Flag.ID,
		Sender:    &sender,
		Recipient: &recipient,
		Transfers: []transaction.Transfer{
			{Asset: types.NativeAsset, Amount: 100},
			{Asset: "gold", Amount: 3},
		},
		Fee:       2,
		Timestamp: 1_600_000_000,
	}
}

func TestGenerateLedgerEntries(t *testing.T) {
	h := New(testConfig())
	r, err := h.NewReceipt(sampleTx(), 5)
	require.NoError(t, err)
	require.False(t, r.IsFinalised())

	batches := r.Entries().Batches()
	require.Len(t, batches, 3)
	require.Equal(t, []ledger.Entry{
		ledger.NewEntry(Debit, alice, 100, types.NativeAsset),
		ledger.NewEntry(Credit, bob, 100, types.NativeAsset),
	}, batches[0])
	require.Equal(t, []ledger.Entry{
		ledger.NewEntry(Debit, alice, 3, "gold"),
		ledger.NewEntry(Credit, bob, 3, "gold"),
	}, batches[1])
	require.Equal(t, []ledger.Entry{ledger.NewEntry(Fee, alice, 2, types.NativeAsset)}, batches[2])
}

func TestGenerateLedgerEntriesErrors(t *testing.T) {
	h := New(testConfig())

	tx := sampleTx()
	tx.Sender = nil
	_, err := h.NewReceipt(tx, 5)
	require.ErrorIs(t, err, ErrMissingParty)

	tx = sampleTx()
	tx.Transfers = nil
	_, err = h.NewReceipt(tx, 5)
	require.ErrorIs(t, err, ErrNoTransfers)

	conf := testConfig()
	conf.MaxLedgerEntries = 4
	_, err = New(conf).NewReceipt(sampleTx(), 5)
	require.ErrorIs(t, err, ledger.ErrTooManyEntries)
}

func TestDecodeReceipt(t *testing.T) {
	conf := testConfig()
	reg := registry.New(conf)
	h := New(conf)
	require.NoError(t, Register(reg, h))
	tx := sampleTx()
	r, err := h.NewReceipt(tx, 5)
	require.NoError(t, err)
	r.SetStatus(StatusApplied)
	raw, err := r.Serialize()
	require.NoError(t, err)

	decoded, err := h.DecodeReceipt(reg.LedgerFlags(), tx, raw, 5)
	require.NoError(t, err)
	require.True(t, r.Equal(decoded))
}

func TestDecodeReceiptRegistryFlags(t *testing.T) {
	conf := testConfig()
	reg := registry.New(conf)
	require.NoError(t, Register(reg, New(conf)))
	burn := ledger.Flag{ID: 9, Name: "burn"}

	handler, err := reg.Get(Flag.ID)
	require.NoError(t, err)
	tx := sampleTx()
	r, err := handler.NewReceipt(tx, 5)
	require.NoError(t, err)
	require.NoError(t, r.AddBatch(ledger.NewEntry(burn, alice, 5, types.NativeAsset)))
	r.SetStatus(StatusApplied)
	raw, err := r.Serialize()
	require.NoError(t, err)

	_, err = handler.DecodeReceipt(reg.LedgerFlags(), tx, raw, 5)
	require.ErrorIs(t, err, ledger.ErrUnknownFlag)

	require.NoError(t, reg.RegisterLedgerFlags(burn))
	decoded, err := handler.DecodeReceipt(reg.LedgerFlags(), tx, raw, 5)
	require.NoError(t, err)
	require.True(t, r.Equal(decoded))
	batches := decoded.Entries().Batches()
	require.Equal(t, burn, batches[len(batches)-1][0].Flag)
}

func TestApplyUndo(t *testing.T) {
	state := balances{
		{alice, types.NativeAsset}: 1000,
		{alice, "gold"}:            10,
	}
	h := New(testConfig(), WithState(state))
	r, err := h.NewReceipt(sampleTx(), 5)
	require.NoError(t, err)

	require.NoError(t, r.Apply())
	require.True(t, r.IsFinalised())
	require.Equal(t, int32(StatusApplied), r.Status())
	require.Equal(t, uint64(898), state[balanceKey{alice, types.NativeAsset}])
	require.Equal(t, uint64(100), state[balanceKey{bob, types.NativeAsset}])
	require.Equal(t, uint64(7), state[balanceKey{alice, "gold"}])
	require.Equal(t, uint64(3), state[balanceKey{bob, "gold"}])

	require.NoError(t, r.Undo())
	require.Equal(t, uint64(1000), state[balanceKey{alice, types.NativeAsset}])
	require.Equal(t, uint64(10), state[balanceKey{alice, "gold"}])
	require.Zero(t, state[balanceKey{bob, types.NativeAsset}])
}

func TestApplyFailureReverts(t *testing.T) {
	state := balances{{alice, types.NativeAsset}: 1000}
	h := New(testConfig(), WithState(state))
	r, err := h.NewReceipt(sampleTx(), 5)
	require.NoError(t, err)

	require.ErrorIs(t, r.Apply(), errInsufficient)
	require.Equal(t, int32(StatusFailed), r.Status())
	require.Equal(t, uint64(1000), state[balanceKey{alice, types.NativeAsset}])
	require.Zero(t, state[balanceKey{bob, types.NativeAsset}])
}

func TestApplySkipsInformationalEntries(t *testing.T) {
	state := balances{{alice, types.NativeAsset}: 1000, {alice, "gold"}: 10}
	h := New(testConfig(), WithState(state))
	r, err := h.NewReceipt(sampleTx(), 5)
	require.NoError(t, err)
	note := ledger.NewEntry(Credit, alice, 500, types.NativeAsset)
	note.Applicable = false
	require.NoError(t, r.AddBatch(note))

	require.NoError(t, r.Apply())
	require.Equal(t, uint64(898), state[balanceKey{alice, types.NativeAsset}])
}

func TestRegister(t *testing.T) {
	conf := testConfig()
	reg := registry.New(conf)
	require.NoError(t, Register(reg, New(conf)))

	h, err := reg.Get(Flag.ID)
	require.NoError(t, err)
	require.Equal(t, Flag, h.Flag())

	fee, err := reg.LedgerFlags().Get(Fee.ID)
	require.NoError(t, err)
	require.Equal(t, Fee, fee)
}
