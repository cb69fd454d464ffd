package art

// String renders the disclosed points onto a blank Width x Height grid.
// Every row, including the last, ends with a newline.
func (img *Image) String() string {
	w, h := img.dimension.Width, img.dimension.Height

	buf := make([]rune, (w+1)*h)
	for i := range buf {
		buf[i] = ' '
	}
	for y := 0; y < h; y++ {
		buf[(w+1)*y+w] = '\n'
	}

	for _, p := range img.points[:img.visible] {
		buf[int(p.X)+int(p.Y)*(w+1)] = p.Code
	}

	return string(buf)
}
