package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"

	// PNG decoder registration for FSProvider.
	_ "image/png"
)

// ID names every image the game draws.
type ID int

const (
	PlayerShip ID = iota
	CapturedShip
	BlueBug
	RedBug
	YellowBug
	Commander1
	Commander2
	PlayerBullet
	EnemyBullet
	PiercingBullet
	PowerUpItemPiercing
	HUDIconPiercing
	PowerUpItemMissile
	HUDIconMissile
	PowerUpItemLaser
	HUDIconLaser
	ExplosionEnemy
	ExplosionPlayer

	idCount
)

var idNames = [idCount]string{
	PlayerShip:          "player_ship",
	CapturedShip:        "captured_ship",
	BlueBug:             "blue_bug",
	RedBug:              "red_bug",
	YellowBug:           "yellow_bug",
	Commander1:          "commander1",
	Commander2:          "commander2",
	PlayerBullet:        "player_bullet",
	EnemyBullet:         "enemy_bullet",
	PiercingBullet:      "piercing_bullet",
	PowerUpItemPiercing: "powerup_item_piercing",
	HUDIconPiercing:     "hud_icon_piercing",
	PowerUpItemMissile:  "powerup_item_missile",
	HUDIconMissile:      "hud_icon_missile",
	PowerUpItemLaser:    "powerup_item_laser",
	HUDIconLaser:        "hud_icon_laser",
	ExplosionEnemy:      "explosion_enemy",
	ExplosionPlayer:     "explosion_player",
}

func (id ID) String() string {
	if id < 0 || id >= idCount {
		return fmt.Sprintf("asset(%d)", int(id))
	}
	return idNames[id]
}

// All returns every asset the game needs, in declaration order.
func All() []ID {
	ids := make([]ID, 0, idCount)
	for id := ID(0); id < idCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Provider decodes images by identifier.
type Provider interface {
	Image(id ID) (image.Image, error)
}

var ErrEmptyImage = errors.New("image has no pixels")

// Library holds every decoded image. It is only built through Load, so a
// Library never has gaps.
type Library struct {
	images [idCount]image.Image
}

// Load fetches every identifier from the provider up front. Any failure
// aborts the load.
func Load(p Provider) (*Library, error) {
	lib := &Library{}
	for _, id := range All() {
		img, err := p.Image(id)
		if err != nil {
			return nil, fmt.Errorf("load asset %s: %w", id, err)
		}
		if img == nil || img.Bounds().Empty() {
			return nil, fmt.Errorf("load asset %s: %w", id, ErrEmptyImage)
		}
		lib.images[id] = img
	}
	return lib, nil
}

// Image returns the decoded image for id.
func (l *Library) Image(id ID) image.Image {
	if id < 0 || id >= idCount {
		panic(fmt.Sprintf("asset %s not found", id))
	}
	return l.images[id]
}

// AspectRatio returns height/width of a single frame when the image is a
// horizontal strip of the given number of frames.
func (l *Library) AspectRatio(id ID, frames int) float64 {
	if frames < 1 {
		frames = 1
	}
	b := l.Image(id).Bounds()
	frameW := float64(b.Dx()) / float64(frames)
	return float64(b.Dy()) / frameW
}

// FSProvider reads "<name>.png" files from a directory tree.
type FSProvider struct {
	FS  fs.FS
	Dir string
}

func (p FSProvider) Image(id ID) (image.Image, error) {
	f, err := p.FS.Open(path.Join(p.Dir, id.String()+".png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return img, nil
}
