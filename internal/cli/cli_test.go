// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (p *scriptedPrompter) next(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *scriptedPrompter) ReadLine(prompt string) (string, error)   { return p.next(prompt) }
func (p *scriptedPrompter) ReadSecret(prompt string) (string, error) { return p.next(prompt) }

type fakeVault struct {
	mu       sync.Mutex
	unlocked bool
	password string

	unlockCalls int
	registered  string
	added       []client.ItemInput
	patches     map[string]client.ItemPatch
	deleted     []string
	items       []client.Item
	listTag     string
	policy      generator.Policy
}

func newFakeVault() *fakeVault {
	return &fakeVault{password: "correct horse battery staple", patches: map[string]client.ItemPatch{}}
}

func (f *fakeVault) Register(_ context.Context, email, _ string) error {
	f.registered = email
	f.unlocked = true
	return nil
}

func (f *fakeVault) Unlock(_ context.Context, _, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlockCalls++
	if password != f.password {
		return adapter.ErrUnauthorized
	}
	f.unlocked = true
	return nil
}

func (f *fakeVault) Lock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlocked = false
}

func (f *fakeVault) Logout(context.Context) error { f.Lock(); return nil }

func (f *fakeVault) Unlocked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unlocked
}

func (f *fakeVault) LastActivity() time.Time { return time.Now() }

func (f *fakeVault) Whoami(context.Context) (*models.UserIdentity, error) {
	return &models.UserIdentity{ID: "u1", Email: "alice@example.com"}, nil
}

func (f *fakeVault) AddItem(_ context.Context, in client.ItemInput) (string, error) {
	f.added = append(f.added, in)
	return "item-1", nil
}

func (f *fakeVault) ListItems(_ context.Context, tag string) ([]client.Item, error) {
	f.listTag = tag
	return f.items, nil
}

func (f *fakeVault) UpdateItem(_ context.Context, id string, patch client.ItemPatch) error {
	f.patches[id] = patch
	return nil
}

func (f *fakeVault) DeleteItem(_ context.Context, id string) error {
	if id == "missing" {
		return adapter.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeVault) Generate(p generator.Policy) (string, error) {
	f.policy = p
	return generator.New().Generate(p)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type harness struct {
	vault    *fakeVault
	prompter *scriptedPrompter
	deps     *Deps
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newHarness(lines ...string) *harness {
	h := &harness{
		vault:    newFakeVault(),
		prompter: &scriptedPrompter{lines: lines},
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
	}
	h.deps = &Deps{
		Vault:         h.vault,
		Prompter:      h.prompter,
		DefaultEmail:  "alice@example.com",
		AutoLockAfter: time.Minute,
		Logger:        logger.Nop(),
	}
	return h
}

func (h *harness) run(args ...string) error {
	root := NewRootCommand(h.deps)
	root.SetArgs(args)
	root.SetOut(h.out)
	root.SetErr(h.errOut)
	return root.ExecuteContext(context.Background())
}

func ptr(s string) *string { return &s }

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	h := newHarness("pw-pw-pw-pw", "pw-pw-pw-pw")

	require.NoError(t, h.run("register"))
	assert.Equal(t, "alice@example.com", h.vault.registered)
	assert.Contains(t, h.out.String(), "registered alice@example.com")
}

func TestRegister_Mismatch(t *testing.T) {
	h := newHarness("first", "second")

	assert.ErrorIs(t, h.run("register"), ErrPasswordMismatch)
	assert.Empty(t, h.vault.registered)
}

func TestRegister_PromptsForEmail(t *testing.T) {
	h := newHarness("bob@example.com", "pw", "pw")
	h.deps.DefaultEmail = ""

	require.NoError(t, h.run("register"))
	assert.Equal(t, "bob@example.com", h.vault.registered)
	assert.Equal(t, "Email: ", h.prompter.prompts[0])
}

func TestRegister_EmptyEmail(t *testing.T) {
	h := newHarness("   ")
	h.deps.DefaultEmail = ""

	assert.ErrorIs(t, h.run("register"), ErrEmptyEmail)
}

func TestAdd(t *testing.T) {
	h := newHarness("correct horse battery staple")

	require.NoError(t, h.run("add", "--title", "Bank", "--notes", "", "--tag", "finance", "--tag", "personal"))
	require.Len(t, h.vault.added, 1)

	in := h.vault.added[0]
	assert.Equal(t, ptr("Bank"), in.Title)
	assert.Equal(t, ptr(""), in.Notes)
	assert.Nil(t, in.Username)
	assert.Nil(t, in.Password)
	assert.Equal(t, []string{"finance", "personal"}, in.Tags)
	assert.Equal(t, "item-1\n", h.out.String())
	assert.Equal(t, 1, h.vault.unlockCalls)
}

func TestAdd_GeneratedPassword(t *testing.T) {
	h := newHarness("correct horse battery staple")

	require.NoError(t, h.run("add", "--title", "Bank", "--generate"))
	require.NotNil(t, h.vault.added[0].Password)
	assert.Len(t, *h.vault.added[0].Password, generator.DefaultPolicy().Length)
}

func TestAdd_WrongMasterPassword(t *testing.T) {
	h := newHarness("wrong")

	err := h.run("add", "--title", "Bank")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, h.vault.added)
}

func TestList(t *testing.T) {
	h := newHarness("correct horse battery staple")
	h.vault.items = []client.Item{{
		ID:   "item-1",
		Tags: []string{"finance"},
		Fields: map[models.FieldName]client.FieldResult{
			models.FieldTitle: {Value: "Bank"},
			models.FieldNotes: {Err: crypto.ErrAuthenticationFailure},
		},
	}}

	require.NoError(t, h.run("list", "--tag", "finance"))
	assert.Equal(t, "finance", h.vault.listTag)

	out := h.out.String()
	assert.Contains(t, out, "item-1")
	assert.Contains(t, out, "[finance]")
	assert.Contains(t, out, "Bank")
	assert.Contains(t, out, undecryptable)
	assert.Contains(t, h.errOut.String(), "1 field(s) could not be decrypted")
}

func TestList_Empty(t *testing.T) {
	h := newHarness("correct horse battery staple")

	require.NoError(t, h.run("ls"))
	assert.Equal(t, "no items\n", h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    client.ItemPatch
		wantErr error
	}{
		{
			name: "one field",
			args: []string{"update", "item-1", "--password", "new"},
			want: client.ItemPatch{Password: ptr("new")},
		},
		{
			name: "replace tags",
			args: []string{"update", "item-1", "--tag", "work"},
			want: client.ItemPatch{Tags: &[]string{"work"}},
		},
		{
			name: "clear tags",
			args: []string{"update", "item-1", "--clear-tags"},
			want: client.ItemPatch{Tags: &[]string{}},
		},
		{
			name:    "nothing given",
			args:    []string{"update", "item-1"},
			wantErr: ErrNothingToUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness("correct horse battery staple")

			err := h.run(tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, h.vault.unlockCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.vault.patches["item-1"])
		})
	}
}

func TestRemove(t *testing.T) {
	h := newHarness("correct horse battery staple")

	require.NoError(t, h.run("rm", "item-1"))
	assert.Equal(t, []string{"item-1"}, h.vault.deleted)

	assert.ErrorIs(t, h.run("rm", "missing"), adapter.ErrNotFound)
	assert.Error(t, h.run("rm"))
}

func TestWhoami(t *testing.T) {
	h := newHarness("correct horse battery staple")

	require.NoError(t, h.run("whoami"))
	assert.Equal(t, "alice@example.com (u1)\n", h.out.String())
}

func TestGenerate(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.run("generate", "-n", "24", "--no-symbols", "--no-upper"))

	secret := strings.TrimSpace(h.out.String())
	assert.Len(t, secret, 24)
	assert.Equal(t, generator.Lower|generator.Digit, h.vault.policy.Classes)
	assert.Zero(t, h.vault.unlockCalls)
}

func TestGenerate_NoClasses(t *testing.T) {
	h := newHarness()

	err := h.run("generate", "--no-lower", "--no-upper", "--no-digits", "--no-symbols")
	assert.ErrorIs(t, err, ErrNoClasses)
}

// fakeClipboard records every write. When overwrittenBy is set, reads
// return it as if the user had copied something else meanwhile.
type fakeClipboard struct {
	mu            sync.Mutex
	writes        []string
	overwrittenBy string
	writeErr      error
}

func (c *fakeClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overwrittenBy != "" {
		return c.overwrittenBy, nil
	}
	if len(c.writes) == 0 {
		return "", nil
	}
	return c.writes[len(c.writes)-1], nil
}

func TestGenerate_Copy(t *testing.T) {
	h := newHarness()
	clip := &fakeClipboard{}
	h.deps.Clipboard = clip
	h.deps.ClipboardClearAfter = 20 * time.Millisecond

	require.NoError(t, h.run("generate", "--copy"))

	require.Len(t, clip.writes, 2, "secret is written and then wiped")
	assert.Len(t, clip.writes[0], generator.DefaultPolicy().Length)
	assert.Empty(t, clip.writes[1])
	assert.Empty(t, h.out.String())
	assert.Contains(t, h.errOut.String(), "copied")
	assert.Contains(t, h.errOut.String(), "clipboard cleared")
}

func TestGenerate_CopyKeepsNewerClipboardText(t *testing.T) {
	h := newHarness()
	clip := &fakeClipboard{overwrittenBy: "lunch menu"}
	h.deps.Clipboard = clip
	h.deps.ClipboardClearAfter = 10 * time.Millisecond

	require.NoError(t, h.run("generate", "--copy"))

	assert.Len(t, clip.writes, 1, "text copied after the secret is not wiped")
	assert.NotContains(t, h.errOut.String(), "clipboard cleared")
}

func TestGenerate_CopyFails(t *testing.T) {
	h := newHarness()
	h.deps.Clipboard = &fakeClipboard{writeErr: errors.New("no display")}

	assert.ErrorContains(t, h.run("generate", "--copy"), "no display")
}

func TestGenerate_CopyWithoutClipboard(t *testing.T) {
	h := newHarness()

	assert.ErrorIs(t, h.run("generate", "--copy"), clipboard.ErrUnavailable)
}

func TestShell(t *testing.T) {
	h := newHarness(
		"correct horse battery staple",
		"add --title Bank",
		"",
		"rm missing",
		"lock",
		"rm item-1",
		"correct horse battery staple",
		"exit",
		"rm never-reached",
	)

	require.NoError(t, h.run("shell"))

	assert.Len(t, h.vault.added, 1)
	assert.Equal(t, []string{"item-1"}, h.vault.deleted)
	assert.Equal(t, 2, h.vault.unlockCalls)
	assert.Contains(t, h.errOut.String(), adapter.ErrNotFound.Error())
	assert.False(t, h.vault.Unlocked())
}

func TestShell_EOF(t *testing.T) {
	h := newHarness("correct horse battery staple", "whoami")

	require.NoError(t, h.run("shell"))
	assert.Contains(t, h.out.String(), "alice@example.com (u1)")
}

func TestTerminalPrompter_NonTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTerminalPrompter(strings.NewReader("alice@example.com\r\nsecret"), out, -1)

	line, err := p.ReadLine("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", line)

	secret, err := p.ReadSecret("Master password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", secret)

	_, err = p.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Email: Master password: > ", out.String())
}

func TestVersion(t *testing.T) {
	h := newHarness()
	h.deps.BuildInfo = "Build version: v1.2.3"

	require.NoError(t, h.run("version"))
	assert.Equal(t, "Build version: v1.2.3\n", h.out.String())
}

func TestWithAutoLock_LocksWhenDone(t *testing.T) {
	h := newHarness()
	h.vault.unlocked = true

	ran := false
	err := withAutoLock(context.Background(), h.deps, func(ctx context.Context) error {
		ran = true
		assert.NoError(t, ctx.Err())
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, h.vault.Unlocked())
}

func TestRootCommand_HasUI(t *testing.T) {
	root := NewRootCommand(newHarness().deps)

	cmd, _, err := root.Find([]string{"ui"})
	require.NoError(t, err)
	assert.Equal(t, "ui", cmd.Name())
}
