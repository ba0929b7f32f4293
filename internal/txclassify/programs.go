package txclassify

const (
	// NativeMint is the wrapped SOL mint, used to price native transfers.
	NativeMint = "So11111111111111111111111111111111111111112"

	// nativeDecimals is the number of decimals of a lamport amount.
	nativeDecimals uint8 = 9

	systemProgramID    = "11111111111111111111111111111111"
	tokenProgramID     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// dexPrograms maps swap venue program ids to their display name.
var dexPrograms = map[string]string{
	"675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8": "Raydium",
	"CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK": "Raydium CLMM",
	"CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C": "Raydium CPMM",
	"JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUJoi5QNyVTaV4":  "Jupiter",
	"JUP4Fb2cqiRUcaTHdrPC8h2gNsA2ETXiPDD33WcGuJB":  "Jupiter",
	"whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc":  "Orca",
	"9W959DqEETiGZocYWCQPaJ6sBmUzgfxXfqGeTEdp3aQP": "Orca",
	"6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P":  "Pump.fun",
	"pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA":  "PumpSwap",
	"LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo":  "Meteora DLMM",
	"Eo7WjKq67rjJQSZxS6z3YkapzY3eMj6Xy8X5EQVn5UaB": "Meteora",
	"2wT8Yq49kHgDzXuPxZSaeLaH1qbmGXtEyPy64bL7aD3c": "Lifinity",
}

// transferPrograms are the programs whose instructions move native SOL or
// SPL tokens.
var transferPrograms = map[string]struct{}{
	systemProgramID:    {},
	tokenProgramID:     {},
	token2022ProgramID: {},
}

// labeledProgram describes a well-known program that is neither a swap
// venue nor a plain transfer program.
type labeledProgram struct {
	name string
	defi bool
}

// labeledPrograms is consulted for activities that are neither swaps nor
// transfers. Programs flagged as defi turn the activity into a DEFI event.
var labeledPrograms = map[string]labeledProgram{
	"ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL": {name: "Associated Token Account"},
	"MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr":  {name: "Memo"},
	"metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s":  {name: "Metaplex Token Metadata"},
	"Stake11111111111111111111111111111111111111":  {name: "Native Staking", defi: true},
	"SPoo1Ku8WFXoNDMHPsrGSTSG1Y47rzgn41SLUNakuHy":  {name: "Stake Pool", defi: true},
	"MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD":  {name: "Marinade Finance", defi: true},
	"KLend2g3cP87fffoy8q1mQqGKjrxjC8boSyAYavgmjD":  {name: "Kamino Lend", defi: true},
	"So1endDq2YkqhipRh3WViPa8hdiSpxWy6z3Z6tMCpAo":  {name: "Solend", defi: true},
	"dRiftyHA39MWEi3m9aunc5MzRF1JYuBsbn6VPcn33UH":  {name: "Drift", defi: true},
}

// unknownPlatform is the platform label of activities no program table knows.
const unknownPlatform = "Unknown"
