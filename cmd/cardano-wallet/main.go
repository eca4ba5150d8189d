// cardano-wallet is a command-line wallet for building, fee-estimating
// and inspecting Shelley-era transactions offline.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/shinchan121/cardano-wallet/config"
	"github.com/shinchan121/cardano-wallet/internal/log"
	"github.com/shinchan121/cardano-wallet/internal/wallet"
	"github.com/shinchan121/cardano-wallet/pkg/tx"
	"github.com/shinchan121/cardano-wallet/pkg/types"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Lovelace per ada, for amount formatting.
const (
	lovelacePerAda = 1_000_000
	adaDecimals    = 6
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	var (
		network  string
		dataDir  string
		cfgPath  string
		logLevel string
		logFile  string
		logJSON  bool
	)

	// Scan for --network, --datadir, --config and logging flags before
	// the subcommand.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--network" && len(args) > 1:
			network = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			network = args[0][len("--network="):]
			args = args[1:]
		case args[0] == "--datadir" && len(args) > 1:
			dataDir = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			dataDir = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--config" && len(args) > 1:
			cfgPath = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--config="):
			cfgPath = args[0][len("--config="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--log-file" && len(args) > 1:
			logFile = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-file="):
			logFile = args[0][len("--log-file="):]
			args = args[1:]
		case args[0] == "--log-json":
			logJSON = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	// Config file lives under the data directory unless --config points
	// elsewhere.
	if cfgPath == "" {
		base := dataDir
		if base == "" {
			base = config.DefaultDataDir()
		}
		cfgPath = filepath.Join(base, "wallet.yaml")
	}

	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		fatal("load config: %v", err)
	}

	flags := &config.Flags{
		Network:  network,
		DataDir:  dataDir,
		LogLevel: logLevel,
		LogFile:  logFile,
		LogJSON:  logJSON,
	}
	if err := flags.Apply(cfg); err != nil {
		fatal("%v", err)
	}
	if err := config.Validate(cfg); err != nil {
		fatal("invalid config: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	log.CLI.Debug().
		Str("network", string(cfg.Network)).
		Str("datadir", cfg.DataDir).
		Msg("configuration loaded")

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "wallet":
		cmdWallet(cmdArgs, cfg)
	case "fee":
		cmdFee(cmdArgs, cfg)
	case "max-inputs":
		cmdMaxInputs(cmdArgs, cfg)
	case "build":
		cmdBuild(cmdArgs, cfg)
	case "decode":
		cmdDecode(cmdArgs)
	case "config":
		cmdConfig(cmdArgs, cfg, cfgPath)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: cardano-wallet [global flags] <command> [flags]

Global flags:
  --network <net>     mainnet (default) or testnet
  --datadir <path>    Data directory (default: ~/.cardano-wallet)
  --config <path>     Config file (default: <datadir>/wallet.yaml)
  --log-level <lvl>   debug, info, warn, or error
  --log-file <path>   Also write logs to this file (JSON)
  --log-json          Log JSON to the console

Commands:
  wallet create --name <n> [--addresses N]
                                  Create a new wallet
  wallet import --name <n> --mnemonic "..." [--addresses N]
                                  Import wallet from mnemonic
  wallet list                     List wallets
  wallet address --wallet <w>     List wallet addresses
  wallet new-address --wallet <w> Derive the next external address

  fee [--inputs N] [--outputs N] [--change N] [--withdrawal amt]
      [--stake join|register|quit]
                                  Estimate the minimum fee for a
                                  transaction of the given shape
  max-inputs [--outputs N]        Largest input count that fits the
                                  protocol transaction size limit
  build --wallet <w> --utxos <file.json> --to <addr> --amount <amt>
        --tip <slot> [--out <file>]
                                  Build and sign a payment offline
  decode <hex> | decode --file <path>
                                  Decode a signed transaction

  config init                     Write the current config to disk
  config show                     Print the effective config
`)
}

// ── wallet ──────────────────────────────────────────────────────────────

func cmdWallet(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: cardano-wallet wallet <create|import|list|address|new-address> [flags]")
	}

	switch args[0] {
	case "create":
		cmdWalletCreate(args[1:], cfg)
	case "import":
		cmdWalletImport(args[1:], cfg)
	case "list":
		cmdWalletList(cfg)
	case "address":
		cmdWalletAddress(args[1:], cfg)
	case "new-address":
		cmdWalletNewAddress(args[1:], cfg)
	default:
		fatal("Unknown wallet command: %s", args[0])
	}
}

func cmdWalletCreate(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet create", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	addresses := fs.Uint("addresses", 1, "Number of external addresses to derive")
	fs.Parse(args)

	if *name == "" {
		fatal("Usage: cardano-wallet wallet create --name <name> [--addresses N]")
	}
	if *addresses == 0 {
		fatal("--addresses must be at least 1")
	}

	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		fatal("generate mnemonic: %v", err)
	}

	fmt.Println("Your recovery phrase (24 words):")
	fmt.Println()
	fmt.Printf("  %s\n", mnemonic)
	fmt.Println()
	fmt.Println("Write it down and store it safely. Anyone with these words")
	fmt.Println("can spend your funds. They are NOT stored anywhere else.")
	fmt.Println()

	password := readNewPassword()

	seed, err := wallet.SeedFromMnemonic(mnemonic, "")
	if err != nil {
		fatal("derive seed: %v", err)
	}

	createWallet(cfg, *name, seed, password, uint32(*addresses))
}

func cmdWalletImport(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet import", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	mnemonic := fs.String("mnemonic", "", "BIP-39 recovery phrase")
	addresses := fs.Uint("addresses", 1, "Number of external addresses to derive")
	fs.Parse(args)

	if *name == "" || *mnemonic == "" {
		fatal(`Usage: cardano-wallet wallet import --name <name> --mnemonic "..." [--addresses N]`)
	}
	if *addresses == 0 {
		fatal("--addresses must be at least 1")
	}
	if !wallet.ValidateMnemonic(*mnemonic) {
		fatal("invalid mnemonic")
	}

	password := readNewPassword()

	seed, err := wallet.SeedFromMnemonic(*mnemonic, "")
	if err != nil {
		fatal("derive seed: %v", err)
	}

	createWallet(cfg, *name, seed, password, uint32(*addresses))
}

// createWallet derives the first account, encrypts the seed into the
// keystore, and records the derived address metadata. The seed is
// zeroed before returning.
func createWallet(cfg *config.Config, name string, seed, password []byte, addresses uint32) {
	account, err := wallet.NewAccount(seed, cfg.Protocol.Network(), 0, addresses)
	if err != nil {
		fatal("derive account: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}

	err = ks.Create(name, seed, password, wallet.DefaultParams())
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		fatal("create wallet: %v", err)
	}

	for i := uint32(0); i < addresses; i++ {
		addr, err := account.Address(i)
		if err != nil {
			fatal("address %d: %v", i, err)
		}
		if err := ks.AddAddress(name, wallet.AddressEntry{
			Index:   i,
			Role:    wallet.RoleExternal,
			Name:    fmt.Sprintf("Address %d", i),
			Address: addr.String(),
		}); err != nil {
			fatal("record address: %v", err)
		}
	}
	if err := ks.SetNextAddressIndex(name, addresses); err != nil {
		fatal("set address index: %v", err)
	}

	fmt.Printf("Wallet %q created on %s.\n\n", name, cfg.Network)
	for i, addr := range account.Addresses() {
		fmt.Printf("  [%d] %s\n", i, addr)
	}
	fmt.Printf("\nReward account: %s\n", account.RewardAccount())
}

func cmdWalletList(cfg *config.Config) {
	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}

	names, err := ks.List()
	if err != nil {
		fatal("list wallets: %v", err)
	}

	if len(names) == 0 {
		fmt.Println("No wallets found.")
		return
	}
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

func cmdWalletAddress(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet address", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	fs.Parse(args)

	if *walletName == "" {
		fatal("Usage: cardano-wallet wallet address --wallet <name>")
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}

	entries, err := ks.ListAddresses(*walletName)
	if err != nil {
		fatal("list addresses: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No addresses found.")
		return
	}
	for _, e := range entries {
		label := ""
		if e.Role == wallet.RoleInternal {
			label = " (change)"
		}
		fmt.Printf("  [%d] %s%s\n", e.Index, e.Address, label)
	}
}

func cmdWalletNewAddress(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("wallet new-address", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	fs.Parse(args)

	if *walletName == "" {
		fatal("Usage: cardano-wallet wallet new-address --wallet <name>")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}

	nextIdx, err := ks.NextAddressIndex(*walletName)
	if err != nil {
		fatal("get address index: %v", err)
	}

	seed, err := ks.Load(*walletName, password)
	if err != nil {
		fatal("load wallet: %v", err)
	}

	account, err := wallet.NewAccount(seed, cfg.Protocol.Network(), 0, nextIdx+1)
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		fatal("derive account: %v", err)
	}

	addr, err := account.Address(nextIdx)
	if err != nil {
		fatal("derive address: %v", err)
	}

	if err := ks.AddAddress(*walletName, wallet.AddressEntry{
		Index:   nextIdx,
		Role:    wallet.RoleExternal,
		Name:    fmt.Sprintf("Address %d", nextIdx),
		Address: addr.String(),
	}); err != nil {
		fatal("record address: %v", err)
	}
	if err := ks.AdvanceAddressIndex(*walletName); err != nil {
		fatal("advance index: %v", err)
	}

	fmt.Printf("New address [%d]: %s\n", nextIdx, addr)
}

// ── fee ─────────────────────────────────────────────────────────────────

func cmdFee(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("fee", flag.ExitOnError)
	inputs := fs.Int("inputs", 1, "Number of inputs")
	outputs := fs.Int("outputs", 1, "Number of payment outputs")
	change := fs.Int("change", 1, "Number of change outputs")
	withdrawal := fs.String("withdrawal", "", "Reward withdrawal amount in ada")
	stake := fs.String("stake", "", "Stake action: join, register, or quit")
	fs.Parse(args)

	if *inputs < 1 {
		fatal("--inputs must be at least 1")
	}
	if *outputs < 0 || *change < 0 {
		fatal("output counts must not be negative")
	}

	var action *tx.DelegationAction
	switch *stake {
	case "":
	case "join":
		a := tx.Join(types.PoolID{})
		action = &a
	case "register":
		a := tx.RegisterAndJoin(types.PoolID{})
		action = &a
	case "quit":
		a := tx.Quit()
		action = &a
	default:
		fatal("--stake must be join, register, or quit")
	}

	policy := cfg.Protocol.FeePolicy()
	cs := placeholderSelection(cfg.Protocol.Network(), *inputs, *outputs, *change)

	if *withdrawal != "" {
		amt, err := parseAmount(*withdrawal)
		if err != nil {
			fatal("invalid withdrawal amount: %v", err)
		}
		cs.Withdrawal = types.Coin(amt)
	}
	if action != nil {
		cs = action.Adjust(policy, cs)
	}

	fee := tx.MinimumFee(policy, action, cs)
	fmt.Printf("Minimum fee: %s ada (%d lovelace)\n", formatAmount(uint64(fee)), fee)
}

// placeholderSelection builds a selection whose only purpose is size
// estimation: distinct fake txids keep the dummy witnesses apart, and
// every amount is 1 lovelace since only shape feeds the fee.
func placeholderSelection(network types.NetworkID, inputs, outputs, change int) tx.CoinSelection {
	addr := types.NewBaseAddress(network, types.KeyHash{}, types.KeyHash{})

	cs := tx.CoinSelection{
		Inputs:  make([]tx.SelectedInput, inputs),
		Outputs: make([]tx.TxOut, outputs),
		Change:  make([]types.Coin, change),
	}
	for i := range cs.Inputs {
		var txid types.Hash
		binary.BigEndian.PutUint64(txid[:8], uint64(i)+1)
		cs.Inputs[i] = tx.SelectedInput{
			TxIn:   types.TxIn{TxID: txid, Index: 0},
			Source: tx.TxOut{Address: addr, Coin: 1},
		}
	}
	for i := range cs.Outputs {
		cs.Outputs[i] = tx.TxOut{Address: addr, Coin: 1}
	}
	for i := range cs.Change {
		cs.Change[i] = 1
	}
	return cs
}

// ── max-inputs ──────────────────────────────────────────────────────────

func cmdMaxInputs(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("max-inputs", flag.ExitOnError)
	outputs := fs.Int("outputs", 2, "Number of outputs (payments plus change)")
	fs.Parse(args)

	if *outputs < 0 {
		fatal("--outputs must not be negative")
	}

	n := tx.EstimateMaxInputs(cfg.Protocol.MaxTxSize, *outputs)
	fmt.Printf("A transaction with %d outputs fits at most %d inputs within %d bytes.\n",
		*outputs, n, cfg.Protocol.MaxTxSize)
}

// ── build ───────────────────────────────────────────────────────────────

// utxoEntry is the JSON shape of one spendable output in the --utxos
// file.
type utxoEntry struct {
	TxID    string `json:"tx_id"`
	Index   uint32 `json:"index"`
	Address string `json:"address"`
	Value   uint64 `json:"value"` // lovelace
}

func cmdBuild(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	walletName := fs.String("wallet", "", "Wallet name")
	utxoFile := fs.String("utxos", "", "Path to UTXO JSON file")
	to := fs.String("to", "", "Recipient address")
	amount := fs.String("amount", "", "Amount in ada")
	tip := fs.Uint64("tip", 0, "Current chain tip in absolute slots")
	out := fs.String("out", "", "Write sealed tx hex to this file (default: stdout)")
	fs.Parse(args)

	if *walletName == "" || *utxoFile == "" || *to == "" || *amount == "" {
		fatal("Usage: cardano-wallet build --wallet <w> --utxos <file.json> --to <addr> --amount <ada> --tip <slot> [--out <file>]")
	}

	toAddr, err := types.ParseAddress(*to)
	if err != nil {
		fatal("invalid recipient address: %v", err)
	}
	amt, err := parseAmount(*amount)
	if err != nil {
		fatal("invalid amount: %v", err)
	}

	utxos, err := loadUTXOs(*utxoFile)
	if err != nil {
		fatal("load utxos: %v", err)
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}

	ks, err := wallet.NewKeystore(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}

	derived, err := ks.NextAddressIndex(*walletName)
	if err != nil {
		fatal("get address index: %v", err)
	}
	if derived == 0 {
		derived = 1
	}

	seed, err := ks.Load(*walletName, password)
	if err != nil {
		fatal("load wallet: %v", err)
	}

	account, err := wallet.NewAccount(seed, cfg.Protocol.Network(), 0, derived)
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		fatal("derive account: %v", err)
	}

	// Change returns to the wallet's first address.
	changeAddr, err := account.Address(0)
	if err != nil {
		fatal("change address: %v", err)
	}

	payments := []tx.TxOut{{Address: toAddr, Coin: types.Coin(amt)}}
	policy := cfg.Protocol.FeePolicy()

	cs, err := wallet.SelectForPayment(policy, utxos, payments, changeAddr, nil)
	if err != nil {
		fatal("select coins: %v", err)
	}

	factory := tx.NewFactory(tx.EraShelley)
	factory.TTLWindow = tx.SlotNo(cfg.Protocol.TTLWindow)

	signed, err := factory.MakeStdTx(tx.SlotNo(*tip), cs, account.Lookup, account.RewardSigner())
	if err != nil {
		fatal("build transaction: %v", err)
	}

	fee, err := cs.Fee()
	if err != nil {
		fatal("selection fee: %v", err)
	}

	fmt.Printf("Transaction built.\n")
	fmt.Printf("  ID:   %s\n", signed.ID)
	fmt.Printf("  Fee:  %s ada (%d lovelace)\n", formatAmount(uint64(fee)), fee)
	fmt.Printf("  Size: %d bytes\n", len(signed.Sealed))

	sealedHex := hex.EncodeToString(signed.Sealed)
	if *out != "" {
		if err := os.WriteFile(*out, []byte(sealedHex+"\n"), 0644); err != nil {
			fatal("write tx file: %v", err)
		}
		fmt.Printf("  Wrote sealed tx to %s\n", *out)
	} else {
		fmt.Printf("\n%s\n", sealedHex)
	}
}

func loadUTXOs(path string) ([]wallet.UTXO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []utxoEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	utxos := make([]wallet.UTXO, 0, len(entries))
	for i, e := range entries {
		txid, err := types.HexToHash(e.TxID)
		if err != nil {
			return nil, fmt.Errorf("utxo %d: %w", i, err)
		}
		addr, err := types.ParseAddress(e.Address)
		if err != nil {
			return nil, fmt.Errorf("utxo %d: %w", i, err)
		}
		utxos = append(utxos, wallet.UTXO{
			TxIn:    types.TxIn{TxID: txid, Index: e.Index},
			Address: addr,
			Value:   types.Coin(e.Value),
		})
	}
	return utxos, nil
}

// ── decode ──────────────────────────────────────────────────────────────

func cmdDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	file := fs.String("file", "", "Read sealed tx hex from this file")
	fs.Parse(args)

	var raw string
	switch {
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			fatal("read tx file: %v", err)
		}
		raw = string(data)
	case fs.NArg() == 1:
		raw = fs.Arg(0)
	default:
		fatal("Usage: cardano-wallet decode <hex> | decode --file <path>")
	}

	data, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		fatal("invalid hex: %v", err)
	}

	signed, err := tx.DecodeSignedTx(data)
	if err != nil {
		fatal("decode transaction: %v", err)
	}

	fmt.Printf("ID:   %s\n", signed.ID)
	fmt.Printf("Size: %d bytes\n", len(signed.Sealed))
	fmt.Printf("Inputs:  %d\n", len(signed.Inputs))
	for i, in := range signed.Inputs {
		fmt.Printf("  [%d] %s\n", i, in)
	}
	fmt.Printf("Outputs: %d\n", len(signed.Outputs))
	for i, o := range signed.Outputs {
		fmt.Printf("  [%d] %s  %s ada\n", i, o.Address, formatAmount(uint64(o.Coin)))
	}
}

// ── config ──────────────────────────────────────────────────────────────

func cmdConfig(args []string, cfg *config.Config, cfgPath string) {
	if len(args) < 1 {
		fatal("Usage: cardano-wallet config <init|show>")
	}

	switch args[0] {
	case "init":
		if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
			fatal("create config dir: %v", err)
		}
		if err := config.SaveFile(cfg, cfgPath); err != nil {
			fatal("save config: %v", err)
		}
		fmt.Printf("Wrote %s\n", cfgPath)
	case "show":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fatal("marshal config: %v", err)
		}
		fmt.Printf("# %s\n%s", cfgPath, data)
	default:
		fatal("Unknown config command: %s", args[0])
	}
}

// ── Formatting helpers ──────────────────────────────────────────────────

// formatAmount converts lovelace to a human-readable ada string.
func formatAmount(lovelace uint64) string {
	whole := lovelace / lovelacePerAda
	frac := lovelace % lovelacePerAda
	return fmt.Sprintf("%d.%06d", whole, frac)
}

// parseAmount converts a decimal ada string to lovelace.
func parseAmount(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount")
	}

	parts := strings.SplitN(s, ".", 2)

	whole, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid whole part: %w", err)
	}

	var frac uint64
	if len(parts) == 2 {
		fracStr := parts[1]
		if len(fracStr) > adaDecimals {
			return 0, fmt.Errorf("too many decimal places (max %d)", adaDecimals)
		}
		// Pad to adaDecimals digits.
		fracStr = fracStr + strings.Repeat("0", adaDecimals-len(fracStr))
		frac, err = strconv.ParseUint(fracStr, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fractional part: %w", err)
		}
	}

	// Check overflow.
	if whole > math.MaxUint64/lovelacePerAda {
		return 0, fmt.Errorf("amount too large")
	}
	result := whole * lovelacePerAda
	if result > math.MaxUint64-frac {
		return 0, fmt.Errorf("amount too large")
	}

	return result + frac, nil
}

// ── Password helpers ────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// readNewPassword prompts for a password twice and exits on mismatch.
func readNewPassword() []byte {
	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}
	return password
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
