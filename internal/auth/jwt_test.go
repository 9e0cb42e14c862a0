package auth

import (
	"testing"

	"logbook/internal/models"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tok, err := Sign("u-1", "Ana", "ana@example.com", models.RoleOJT)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "u-1" || claims.Name != "Ana" || claims.Role != models.RoleOJT {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tok, err := Sign("u-1", "Ana", "ana@example.com", models.RoleOJT)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := Verify(tok); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerify_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := Verify("not.a.token"); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}

func TestCapabilities(t *testing.T) {
	admin := Claims{Subject: "u-1", Email: "root@example.com", Role: models.RoleAdmin}
	ojt := Claims{Subject: "u-2", Email: "ana@example.com", Role: models.RoleOJT}

	if !admin.CanApprove() || ojt.CanApprove() {
		t.Fatalf("CanApprove wrong")
	}
	if !admin.CanDelete("ana@example.com") {
		t.Fatalf("admin should delete other accounts")
	}
	if admin.CanDelete("ROOT@example.com") {
		t.Fatalf("admin must not delete their own account")
	}
	if ojt.CanDelete("root@example.com") {
		t.Fatalf("ojt must not delete accounts")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := CheckPassword(hash, "secret1"); err != nil {
		t.Fatalf("CheckPassword: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
