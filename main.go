package main

import (
	"log"

	"go_boundary/viewer"
	"go_boundary/viewer/config"
)

func main() {

	// Viewer 생성 (모니터 절반 크기, 리드로우 온디맨드)
	v, err := viewer.NewViewer(config.Message(), config.PlacementName(), config.WindowTitle())
	if err != nil {
		log.Fatal(err)
	}

	// 메인 이벤트 루프 실행
	if err := v.Run(); err != nil {
		log.Fatal(err)
	}
}
