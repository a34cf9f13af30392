// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/secure-notes/internal/crypto"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/mock"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/models"
)

type twoFactorMocks struct {
	accounts *mock.MockAccountRepository
	security *mock.MockSecurityRepository
	otp      *mock.MockOTP
	audit    *mock.MockAuditService
	sealer   crypto.SecretSealer
}

func newTestTwoFactorSvc(t *testing.T, ctrl *gomock.Controller) (TwoFactorService, twoFactorMocks) {
	t.Helper()
	sealer, err := crypto.NewSecretSealer("test-secret-key")
	require.NoError(t, err)

	m := twoFactorMocks{
		accounts: mock.NewMockAccountRepository(ctrl),
		security: mock.NewMockSecurityRepository(ctrl),
		otp:      mock.NewMockOTP(ctrl),
		audit:    mock.NewMockAuditService(ctrl),
		sealer:   sealer,
	}
	storages := &store.Storages{Accounts: m.accounts, Security: m.security}
	return NewTwoFactorService(storages, m.otp, sealer, m.audit, fixedClock(testNow), logger.Nop()), m
}

func TestTwoFactorService_Setup(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the secret sealed and 2FA stays off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.accounts.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(aliceProfile(), nil)
		m.otp.EXPECT().GenerateSecret().Return("JBSWY3DPEHPK3PXP", nil)
		m.otp.EXPECT().ProvisioningURI("JBSWY3DPEHPK3PXP", alice.Email).Return("otpauth://totp/x", nil)
		m.security.EXPECT().SetPendingTOTP(gomock.Any(), alice.ID, gomock.Any(), testNow).DoAndReturn(
			func(_ context.Context, _ int64, sealed string, _ time.Time) error {
				assert.NotContains(t, sealed, "JBSWY3DPEHPK3PXP")
				plain, err := m.sealer.Open(sealed)
				require.NoError(t, err)
				assert.Equal(t, "JBSWY3DPEHPK3PXP", plain)
				return nil
			})
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), models.ActionTwoFactorSetup, testMeta, gomock.Any()).Return(nil)

		got, err := svc.Setup(ctx, alice.ID, true, testMeta)
		require.NoError(t, err)
		assert.Equal(t, models.TwoFactorSetup{Secret: "JBSWY3DPEHPK3PXP", ProvisioningURI: "otpauth://totp/x"}, got)
	})

	t.Run("already enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)
		profile := aliceProfile()
		profile.TOTPEnabled = true

		m.accounts.EXPECT().FindByID(gomock.Any(), alice.ID).Return(alice, nil)
		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(profile, nil)

		_, err := svc.Setup(ctx, alice.ID, true, testMeta)
		assert.ErrorIs(t, err, ErrTwoFactorAlreadyEnabled)
		assert.ErrorIs(t, err, ErrPolicyViolation)
	})

	t.Run("disable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.security.EXPECT().DisableTOTP(gomock.Any(), alice.ID, testNow).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), models.ActionTwoFactorDisabled, testMeta, gomock.Any()).Return(nil)

		got, err := svc.Setup(ctx, alice.ID, false, testMeta)
		require.NoError(t, err)
		assert.False(t, got.Enabled)
	})
}

func pendingProfile(t *testing.T, sealer crypto.SecretSealer) models.SecurityProfile {
	t.Helper()
	sealed, err := sealer.Seal("JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	p := aliceProfile()
	p.TOTPSecret = sealed
	return p
}

func TestTwoFactorService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code enables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(pendingProfile(t, m.sealer), nil)
		m.otp.EXPECT().Verify("JBSWY3DPEHPK3PXP", "123456", testNow).Return(int64(59000000), true)
		m.security.EXPECT().EnableTOTP(gomock.Any(), alice.ID, int64(59000000), testNow).Return(nil)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), models.ActionTwoFactorEnabled, testMeta, gomock.Any()).Return(nil)

		require.NoError(t, svc.Verify(ctx, alice.ID, "123456", testMeta))
	})

	t.Run("wrong code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(pendingProfile(t, m.sealer), nil)
		m.otp.EXPECT().Verify(gomock.Any(), "000000", testNow).Return(int64(0), false)
		m.audit.EXPECT().Record(gomock.Any(), gomock.Any(), models.ActionFailedLogin, testMeta, gomock.Any()).Return(nil)
		m.security.EXPECT().EnableTOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.Verify(ctx, alice.ID, "000000", testMeta)
		assert.ErrorIs(t, err, ErrInvalidTwoFactorToken)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(aliceProfile(), nil)

		err := svc.Verify(ctx, alice.ID, "123456", testMeta)
		assert.ErrorIs(t, err, ErrTwoFactorNotPending)
	})

	t.Run("concurrent disable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, m := newTestTwoFactorSvc(t, ctrl)

		m.security.EXPECT().GetProfile(gomock.Any(), alice.ID).Return(pendingProfile(t, m.sealer), nil)
		m.otp.EXPECT().Verify(gomock.Any(), "123456", testNow).Return(int64(5), true)
		m.security.EXPECT().EnableTOTP(gomock.Any(), alice.ID, int64(5), testNow).Return(store.ErrTOTPNotPending)

		err := svc.Verify(ctx, alice.ID, "123456", testMeta)
		assert.ErrorIs(t, err, ErrTwoFactorNotPending)
	})
}

func TestTwoFactorService_VerifyLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		valid  bool
		fresh  bool
		wantOK bool
	}{
		{name: "fresh code", valid: true, fresh: true, wantOK: true},
		{name: "replayed code", valid: true, fresh: false, wantOK: false},
		{name: "wrong code", valid: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestTwoFactorSvc(t, ctrl)
			profile := pendingProfile(t, m.sealer)
			profile.TOTPEnabled = true

			m.otp.EXPECT().Verify("JBSWY3DPEHPK3PXP", "123456", testNow).Return(int64(42), tt.valid)
			if tt.valid {
				m.security.EXPECT().ConsumeTOTPStep(gomock.Any(), alice.ID, int64(42), testNow).Return(tt.fresh, nil)
			}

			ok, err := svc.VerifyLogin(ctx, profile, "123456")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
