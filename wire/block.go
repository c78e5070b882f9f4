// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// Block is one link of the block chain: a header bound to the batch of
// transactions it commits to.  The first transaction is always the
// coinbase.
type Block struct {
	// BlockSize is informational only.  The candidate block builder
	// fills it with MaxBlockHeaderPayload plus the canonical byte
	// lengths of the transactions; nothing validates it and it carries
	// no consensus meaning.
	BlockSize uint32

	Header BlockHeader

	// TransactionCount mirrors len(Transactions).  AddTransaction keeps
	// the two in sync.
	TransactionCount uint32

	Transactions []*Tx
}

// NewBlock returns a block with the given header and no transactions.
func NewBlock(header *BlockHeader) *Block {
	return &Block{Header: *header}
}

// AddTransaction appends a transaction to the block and bumps the
// transaction count.
func (b *Block) AddTransaction(tx *Tx) {
	b.Transactions = append(b.Transactions, tx)
	b.TransactionCount++
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	c := &Block{
		BlockSize:        b.BlockSize,
		Header:           b.Header,
		TransactionCount: b.TransactionCount,
		Transactions:     make([]*Tx, 0, len(b.Transactions)),
	}
	if b.Header.Nonce != nil {
		nonce := *b.Header.Nonce
		c.Header.Nonce = &nonce
	}
	for _, tx := range b.Transactions {
		c.Transactions = append(c.Transactions, tx.Copy())
	}
	return c
}
