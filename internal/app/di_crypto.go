package app

import (
	cryptoDomain "github.com/allisson/gitops-secrets/internal/crypto/domain"
	cryptoService "github.com/allisson/gitops-secrets/internal/crypto/service"
)

// KeyDeriver returns the PBKDF2 key deriver.
// The master key is read from the environment at every derivation.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = c.initKeyDeriver()
	})
	return c.keyDeriver
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = c.initAEADManager()
	})
	return c.aeadManager
}

// initKeyDeriver creates the key deriver bound to the master key variable.
func (c *Container) initKeyDeriver() cryptoService.KeyDeriver {
	source := cryptoDomain.NewEnvMasterKey(cryptoDomain.DefaultMasterKeyEnv)
	return cryptoService.NewPBKDF2KeyDeriver(source)
}

// initAEADManager creates the AEAD manager service.
func (c *Container) initAEADManager() cryptoService.AEADManager {
	return cryptoService.NewAEADManager()
}
