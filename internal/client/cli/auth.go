package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	pb "github.com/dmitrijs2005/pinvault/internal/proto"
)

func (a *App) prompt(label string) (string, error) {
	return GetSimpleText(a.reader, label, a.out)
}

// readNewPin asks for a PIN twice and returns it when both entries match.
func (a *App) readNewPin(label string) ([]byte, error) {
	pin, err := GetSecret(a.out, label)
	if err != nil {
		return nil, err
	}
	again, err := GetSecret(a.out, "Repeat PIN: ")
	if err != nil {
		common.WipeByteArray(pin)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if !bytes.Equal(pin, again) {
		common.WipeByteArray(pin)
		return nil, errPinMismatch
	}
	return pin, nil
}

// Register prompts for the account details, the password twice and a new
// PIN, and creates the account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	userName, err := a.prompt("Enter username")
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := GetSecret(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	pin, err := a.readNewPin("Choose a 4-digit PIN: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	profile, err := a.client.Register(ctx, &pb.RegisterRequest{
		Email:           email,
		Username:        userName,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Pin:             string(pin),
	})
	if err != nil {
		return err
	}

	a.success("Registered %s, you can login now", profile.Email)
	return nil
}

// Login prompts for email and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.userName = profile.GetUsername()
	a.success("Welcome, %s!", profile.GetUsername())
	return nil
}

// Logout drops the session tokens held by the client.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	profile, err := a.client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:       %s\n", profile.GetId())
	fmt.Fprintf(a.out, "Email:    %s\n", profile.Email)
	fmt.Fprintf(a.out, "Username: %s\n", profile.GetUsername())
	fmt.Fprintf(a.out, "Since:    %s\n", localTime(profile.GetCreatedAt()))
	return nil
}

// ChangePassword asks for the current password and the new one twice.
// The server ends all other sessions on success.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := GetSecret(a.out, "Current password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := GetSecret(a.out, "New password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := GetSecret(a.out, "Confirm new password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.client.ChangePassword(ctx, string(oldPassword), string(newPassword), string(confirm)); err != nil {
		return err
	}

	a.success("Password changed")
	return nil
}

func (a *App) VerifyPin(ctx context.Context) error {
	pin, err := GetPin(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	ok, err := a.client.VerifyPin(ctx, string(pin))
	if err != nil {
		return err
	}

	if ok {
		a.success("PIN is correct")
	} else {
		fmt.Fprintln(a.out, errorColor.Sprint("PIN is not correct"))
	}
	return nil
}

// ChangePin re-keys the whole vault: every item is re-encrypted under the
// new PIN by the server in one step.
func (a *App) ChangePin(ctx context.Context) error {
	oldPin, err := GetSecret(a.out, "Current PIN: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPin)

	newPin, err := a.readNewPin("New PIN: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPin)

	if err := a.client.ChangePin(ctx, string(oldPin), string(newPin)); err != nil {
		return err
	}

	a.success("PIN changed")
	return nil
}
