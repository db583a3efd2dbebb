package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type AccountStore struct {
	// All operations must happen to the configuration file,
	// so they must operate on separate Viper instances.
	v *viper.Viper

	ActiveUserID string             `mapstructure:"activeUserId" json:"activeUserId"`
	Accounts     map[string]Account `mapstructure:"accounts" json:"accounts"`
}

type Account struct {
	UserID       string `mapstructure:"userId" json:"userId"`
	Host         string `mapstructure:"host" json:"host"`
	Email        string `mapstructure:"email" json:"email"`
	SessionToken string `mapstructure:"sessionToken" json:"sessionToken"`
	NetworkID    int64  `mapstructure:"networkId" json:"networkId,omitempty"`
}

func newAccountViper() (*viper.Viper, error) {
	v := viper.New()

	dir, err := GetLoomConfigDir()
	if err != nil {
		return nil, err
	}

	accountsFile := filepath.Join(dir, "accounts.json")
	v.SetConfigFile(accountsFile)
	v.SetConfigType("json")

	return v, nil
}

func LoadAccountStore() (*AccountStore, error) {
	v, err := newAccountViper()
	if err != nil {
		return nil, err
	}

	store := AccountStore{
		v:            v,
		ActiveUserID: "",
		Accounts:     map[string]Account{},
	}

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &store, nil
		}
		return nil, err
	}

	if err := v.Unmarshal(&store); err != nil {
		return nil, err
	}

	return &store, nil
}

func (s *AccountStore) ActiveAccount() (*Account, error) {
	if s.ActiveUserID == "" {
		return nil, errors.New("not logged in")
	}

	activeAccount, exists := s.Accounts[s.ActiveUserID]
	if !exists {
		return nil, errors.New("active account missing")
	}

	return &activeAccount, nil
}

// RemoveAccount deletes an account and clears the active user if it
// pointed at the removed account.
func (s *AccountStore) RemoveAccount(userID string) {
	delete(s.Accounts, userID)
	if s.ActiveUserID == userID {
		s.ActiveUserID = ""
	}
}

func (s *AccountStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.v.ConfigFileUsed()), 0o755); err != nil {
		return err
	}

	s.v.Set("activeUserId", s.ActiveUserID)
	s.v.Set("accounts", s.Accounts)

	return s.v.WriteConfig()
}
