package wallet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shinchan121/cardano-wallet/pkg/types"
)

func testKeystore(t *testing.T) (*Keystore, string) {
	t.Helper()
	dir := t.TempDir()
	ks, err := NewKeystore(dir)
	if err != nil {
		t.Fatalf("NewKeystore: %v", err)
	}
	return ks, dir
}

func testSeedBytes(t *testing.T) []byte {
	t.Helper()
	seed, err := SeedFromMnemonic(vectorMnemonic12, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}
	return seed
}

func TestKeystore_CreateAndLoad(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)
	password := []byte("test-password")

	if err := ks.Create("mywallet", seed, password, fastParams()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	loaded, err := ks.Load("mywallet", password)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(loaded, seed) {
		t.Error("loaded seed does not match original")
	}
}

func TestKeystore_CreateDuplicate(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	if err := ks.Create("dup", seed, []byte("pass"), fastParams()); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if err := ks.Create("dup", seed, []byte("pass"), fastParams()); err == nil {
		t.Error("second Create with the same name should fail")
	}
}

func TestKeystore_LoadWrongPassword(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("correct"), fastParams())

	if _, err := ks.Load("wallet", []byte("wrong")); err == nil {
		t.Error("Load with wrong password should fail")
	}
}

func TestKeystore_LoadNonexistent(t *testing.T) {
	ks, _ := testKeystore(t)

	if _, err := ks.Load("doesnotexist", []byte("pass")); err == nil {
		t.Error("Load of a nonexistent wallet should fail")
	}
}

func TestKeystore_List(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	names, err := ks.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty keystore, got %d wallets", len(names))
	}

	ks.Create("alpha", seed, []byte("p"), fastParams())
	ks.Create("beta", seed, []byte("p"), fastParams())

	names, err = ks.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 wallets, got %d", len(names))
	}
}

func TestKeystore_Delete(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("todelete", seed, []byte("p"), fastParams())

	if err := ks.Delete("todelete"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := ks.Load("todelete", []byte("p")); err == nil {
		t.Error("wallet should be gone after Delete")
	}
}

func TestKeystore_DeleteNonexistent(t *testing.T) {
	ks, _ := testKeystore(t)

	if err := ks.Delete("ghost"); err == nil {
		t.Error("Delete of a nonexistent wallet should fail")
	}
}

func TestKeystore_AddAddress(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())

	err := ks.AddAddress("wallet", AddressEntry{
		Index:   0,
		Role:    RoleExternal,
		Name:    "default",
		Address: "addr_test1example",
	})
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}

	entries, err := ks.ListAddresses("wallet")
	if err != nil {
		t.Fatalf("ListAddresses: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 address, got %d", len(entries))
	}
	if entries[0].Name != "default" {
		t.Errorf("address name = %q, want %q", entries[0].Name, "default")
	}
}

func TestKeystore_AddAddressDuplicatePath(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())
	ks.AddAddress("wallet", AddressEntry{Index: 0, Name: "first", Address: "aa"})

	if err := ks.AddAddress("wallet", AddressEntry{Index: 0, Name: "second", Address: "bb"}); err == nil {
		t.Error("conflicting entry for the same derivation path should fail")
	}
}

func TestKeystore_AddAddressIdempotent(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())

	entry := AddressEntry{Index: 0, Role: RoleExternal, Name: "default", Address: "aa"}
	if err := ks.AddAddress("wallet", entry); err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if err := ks.AddAddress("wallet", entry); err != nil {
		t.Fatalf("re-adding the same entry should be a no-op: %v", err)
	}

	entries, _ := ks.ListAddresses("wallet")
	if len(entries) != 1 {
		t.Errorf("expected 1 address after idempotent insert, got %d", len(entries))
	}
}

func TestKeystore_AddAddressDistinctRoles(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())

	ks.AddAddress("wallet", AddressEntry{Index: 0, Role: RoleExternal, Address: "aa"})
	if err := ks.AddAddress("wallet", AddressEntry{Index: 0, Role: RoleInternal, Address: "bb"}); err != nil {
		t.Fatalf("same index under a different role should be allowed: %v", err)
	}

	entries, _ := ks.ListAddresses("wallet")
	if len(entries) != 2 {
		t.Errorf("expected 2 addresses, got %d", len(entries))
	}
}

func TestKeystore_FilePermissions(t *testing.T) {
	ks, dir := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("secure", seed, []byte("p"), fastParams())

	info, err := os.Stat(filepath.Join(dir, "secure.wallet"))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("wallet file should be 0600, got %o", perm)
	}
}

func TestKeystore_AddressIndex(t *testing.T) {
	ks, _ := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())

	idx, err := ks.NextAddressIndex("wallet")
	if err != nil {
		t.Fatalf("NextAddressIndex: %v", err)
	}
	if idx != 0 {
		t.Errorf("initial index = %d, want 0", idx)
	}

	if err := ks.AdvanceAddressIndex("wallet"); err != nil {
		t.Fatalf("AdvanceAddressIndex: %v", err)
	}
	ks.AdvanceAddressIndex("wallet")

	idx, _ = ks.NextAddressIndex("wallet")
	if idx != 2 {
		t.Errorf("after two advances: index = %d, want 2", idx)
	}

	if err := ks.SetNextAddressIndex("wallet", 5); err != nil {
		t.Fatalf("SetNextAddressIndex: %v", err)
	}
	idx, _ = ks.NextAddressIndex("wallet")
	if idx != 5 {
		t.Errorf("after set: index = %d, want 5", idx)
	}
}

func TestKeystore_AddressIndex_Nonexistent(t *testing.T) {
	ks, _ := testKeystore(t)

	if _, err := ks.NextAddressIndex("ghost"); err == nil {
		t.Error("NextAddressIndex of a nonexistent wallet should fail")
	}
	if err := ks.AdvanceAddressIndex("ghost"); err == nil {
		t.Error("AdvanceAddressIndex of a nonexistent wallet should fail")
	}
	if err := ks.SetNextAddressIndex("ghost", 1); err == nil {
		t.Error("SetNextAddressIndex of a nonexistent wallet should fail")
	}
}

func TestKeystore_RejectsUnknownVersion(t *testing.T) {
	ks, dir := testKeystore(t)
	seed := testSeedBytes(t)

	ks.Create("wallet", seed, []byte("p"), fastParams())

	path := filepath.Join(dir, "wallet.wallet")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read wallet file: %v", err)
	}
	bumped := bytes.Replace(data, []byte(`"version": 1`), []byte(`"version": 2`), 1)
	if bytes.Equal(bumped, data) {
		t.Fatal("fixture did not contain the version field")
	}
	if err := os.WriteFile(path, bumped, 0600); err != nil {
		t.Fatalf("write wallet file: %v", err)
	}

	if _, err := ks.Load("wallet", []byte("p")); err == nil {
		t.Error("Load should reject an unknown file version")
	}
}

func TestKeystore_FullFlow(t *testing.T) {
	ks, _ := testKeystore(t)
	password := []byte("strong-password")

	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic: %v", err)
	}
	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic: %v", err)
	}

	if err := ks.Create("main", seed, password, fastParams()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	account, err := NewAccount(seed, types.TestnetID, 0, 1)
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	addr, _ := account.Address(0)

	err = ks.AddAddress("main", AddressEntry{
		Index:   0,
		Role:    RoleExternal,
		Name:    "default",
		Address: addr.String(),
	})
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if err := ks.SetNextAddressIndex("main", 1); err != nil {
		t.Fatalf("SetNextAddressIndex: %v", err)
	}

	loaded, err := ks.Load("main", password)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(loaded, seed) {
		t.Error("loaded seed mismatch")
	}

	entries, _ := ks.ListAddresses("main")
	if len(entries) != 1 || entries[0].Address != addr.String() {
		t.Error("address not persisted correctly")
	}
	if idx, _ := ks.NextAddressIndex("main"); idx != 1 {
		t.Errorf("next address index = %d, want 1", idx)
	}
}
