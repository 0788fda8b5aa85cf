package systems

import (
	"github.com/automoto/spacehog/components"
	"github.com/automoto/spacehog/config"
	"github.com/automoto/spacehog/gamemath"
	"github.com/automoto/spacehog/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// UpdatePlayer advances the ship's life-state machine. Bullets keep
// updating in every state so shots already fired are never lost.
func UpdatePlayer(e *donburi.Entry, deltaMs int64, screenHeight, screenWidth float64) {
	p := components.Player.Get(e)
	bank := components.BulletBank.Get(e)

	switch p.LifeState {
	case config.Alive:
		tickPowerUp(p, deltaMs)
		components.Sprite.Get(e).Animation.Update(deltaMs)
		WeaponFor(p.Weapon).Update(e, deltaMs)
		UpdateBullets(bank, deltaMs, screenHeight)
	case config.Captured:
		UpdateBullets(bank, deltaMs, screenHeight)
	case config.Exploding:
		p.RespawnTimerMs = config.Player.RespawnMs
		setLifeState(e, p, config.Respawning)
		UpdateBullets(bank, deltaMs, screenHeight)
	case config.Respawning:
		UpdateBullets(bank, deltaMs, screenHeight)
		p.RespawnTimerMs -= deltaMs
		if p.RespawnTimerMs > 0 {
			return
		}
		if p.Lives > 0 {
			respawn(e, p, screenWidth)
		} else {
			setLifeState(e, p, config.GameOver)
			logger.Log.Info("player out of lives")
		}
	case config.GameOver:
		UpdateBullets(bank, deltaMs, screenHeight)
	}
}

func tickPowerUp(p *components.PlayerData, deltaMs int64) {
	if !p.HasPowerUp {
		return
	}
	p.PowerUpTimerMs -= deltaMs
	if p.PowerUpTimerMs <= 0 {
		p.HasPowerUp = false
		p.PowerUpTimerMs = 0
		p.Weapon = config.WeaponStandardGun
	}
}

func respawn(e *donburi.Entry, p *components.PlayerData, screenWidth float64) {
	hp := components.Health.Get(e)
	hp.Current = hp.Max
	setLifeState(e, p, config.Alive)

	obj := components.Object.Get(e)
	obj.MoveTo(screenWidth/2-obj.W/2, p.StartY)

	logger.Log.WithField("lives", p.Lives).Info("player respawned")
}

// setLifeState switches state and the sprite that represents it.
func setLifeState(e *donburi.Entry, p *components.PlayerData, s config.LifeState) {
	if p.LifeState == s {
		return
	}
	p.LifeState = s
	components.Sprite.Get(e).SetStrip(s.Asset(), 1, 0, false)
}

// DamagePlayer applies damage to an ALIVE ship and reports whether the hit
// was fatal. Any other state ignores damage.
func DamagePlayer(e *donburi.Entry, amount int) bool {
	p := components.Player.Get(e)
	if p.LifeState != config.Alive {
		return false
	}
	hp := components.Health.Get(e)
	hp.Current -= amount
	if hp.Current > 0 {
		return false
	}
	hp.Current = 0
	p.Lives--
	setLifeState(e, p, config.Exploding)
	logger.Log.WithFields(logrus.Fields{"lives": p.Lives}).Info("player destroyed")
	return true
}

// FirePlayer shoots with the current weapon. Only an ALIVE ship fires.
func FirePlayer(e *donburi.Entry) bool {
	p := components.Player.Get(e)
	if p.LifeState != config.Alive {
		return false
	}
	return WeaponFor(p.Weapon).Fire(e)
}

// SteerPlayer eases the ship toward a touch point, keeping it on screen.
func SteerPlayer(e *donburi.Entry, touchX, screenWidth float64) {
	obj := components.Object.Get(e)
	target := touchX - obj.W/2
	x := gamemath.Lerp(obj.X, target, config.Player.FollowFactor)
	obj.MoveTo(gamemath.Clamp(x, 0, screenWidth-obj.W), obj.Y)
}

// CollectPowerUp queues a power-up for later activation.
func CollectPowerUp(e *donburi.Entry, t config.PowerUpType) {
	p := components.Player.Get(e)
	p.PowerUps = append(p.PowerUps, t)
}

// ActivateNextPowerUp starts the oldest queued power-up unless one is
// already running.
func ActivateNextPowerUp(e *donburi.Entry) bool {
	p := components.Player.Get(e)
	if p.HasPowerUp || len(p.PowerUps) == 0 {
		return false
	}
	next := p.PowerUps[0]
	p.PowerUps = p.PowerUps[1:]

	stats := next.Stats()
	p.ActivePowerUp = next
	p.HasPowerUp = true
	p.PowerUpTimerMs = stats.DurationMs
	p.Weapon = stats.Weapon

	logger.Log.WithFields(logrus.Fields{
		"powerUp": next.String(),
		"weapon":  stats.Weapon.String(),
	}).Info("power-up activated")
	return true
}

func PlayerLifeState(e *donburi.Entry) config.LifeState {
	return components.Player.Get(e).LifeState
}
